package activity

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("activity not found")

type Type string

const (
	TypeInvestment Type = "investment"
	TypeReturn     Type = "return"
	TypeLoan       Type = "loan"
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
)

func ValidType(t Type) bool {
	switch t {
	case TypeInvestment, TypeReturn, TypeLoan, TypeDeposit, TypeWithdrawal:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusReceived  Status = "received"
	StatusActive    Status = "active"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusReceived, StatusActive:
		return true
	}
	return false
}

// Activity is an append-only record of a financial event. Rows are never
// updated or deleted once written.
type Activity struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	ActivityID string    `gorm:"size:32;uniqueIndex:ux_activities_activity_id" json:"activity_id"`
	UserID     string    `gorm:"size:32;index:idx_activities_user" json:"user_id"`
	Type       Type      `gorm:"type:enum('investment','return','loan','deposit','withdrawal')" json:"type"`
	Amount     float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Date       time.Time `json:"date"`
	Status     Status    `gorm:"type:enum('pending','completed','failed','received','active')" json:"status"`
	// Optional free-text label and link to a loan, bundle, or payment.
	Description string `gorm:"type:text" json:"description,omitempty"`
	ReferenceID string `gorm:"size:64;index" json:"reference_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Activity) TableName() string { return "activities" }
