package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUndisclosed Gender = "prefer_not_to_say"
)

func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUndisclosed:
		return true
	}
	return false
}

// User is the profile + wallet record. Balance is the only mutable money
// field in the system besides the loan repayment ledger; both are only
// written inside a unit-of-work transaction.
type User struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID    string `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Name      string `gorm:"size:255" json:"name"`
	Email     string `gorm:"size:255;index" json:"email"`
	Country   string `gorm:"size:128" json:"country"`
	Region    string `gorm:"size:128" json:"region"`
	Gender    Gender `gorm:"type:enum('male','female','other','prefer_not_to_say');default:'prefer_not_to_say'" json:"gender"`
	RiskScore float64 `gorm:"type:decimal(5,2);default:0" json:"risk_score"`
	// Invariant: never negative after any committed transaction.
	Balance float64 `gorm:"type:decimal(18,2);default:0" json:"balance"`

	ProfilePictureURI    string `gorm:"type:text" json:"profile_picture_uri,omitempty"`
	ProfilePictureWidth  int    `gorm:"default:0" json:"profile_picture_width,omitempty"`
	ProfilePictureHeight int    `gorm:"default:0" json:"profile_picture_height,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
