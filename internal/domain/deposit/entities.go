package deposit

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("deposit capture not found")
	ErrAlreadyApplied = errors.New("deposit already applied")
)

type Status string

const (
	// StatusCreated: gateway order created, user not yet redirected back.
	StatusCreated Status = "created"
	// StatusCaptured: money taken externally, balance not yet credited.
	// Rows stuck here are the manual reconciliation queue.
	StatusCaptured Status = "captured"
	// StatusApplied: balance credited and activity appended.
	StatusApplied Status = "applied"
)

// Capture tracks one gateway order through create -> capture -> apply.
// OrderID is unique, which makes completion idempotent: retrying a capture
// callback for an applied order is a no-op.
type Capture struct {
	ID        uint64  `gorm:"primaryKey;column:id" json:"-"`
	CaptureID string  `gorm:"size:32;uniqueIndex:ux_deposit_captures_capture_id" json:"capture_id"`
	OrderID   string  `gorm:"size:64;uniqueIndex:ux_deposit_captures_order_id" json:"order_id"`
	UserID    string  `gorm:"size:32;index:idx_deposit_captures_user" json:"user_id"`
	Amount    float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Currency  string  `gorm:"size:3" json:"currency"`
	Status    Status  `gorm:"type:enum('created','captured','applied');default:'created';index" json:"status"`
	// PaymentID is the gateway's capture id, recorded at capture time.
	PaymentID string `gorm:"size:64" json:"payment_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Capture) TableName() string { return "deposit_captures" }
