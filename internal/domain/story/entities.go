package story

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("story not found")

type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

// Story is a community post attached to a loan. The image itself lives in
// object storage; only the resulting URL is stored here.
type Story struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	StoryID     string  `gorm:"size:32;uniqueIndex:ux_stories_story_id" json:"story_id"`
	UserID      string  `gorm:"size:32;index:idx_stories_user" json:"user_id"`
	LoanID      string  `gorm:"size:32;index" json:"loan_id"`
	Title       string  `gorm:"size:255" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	ImageURL    string  `gorm:"type:text" json:"image_url"`
	Purpose     string  `gorm:"size:32" json:"purpose"`
	Amount      float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Currency    string  `gorm:"size:3" json:"currency"`
	Likes       int     `gorm:"default:0" json:"likes"`
	Status      Status  `gorm:"type:enum('active','removed');default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Story) TableName() string { return "stories" }
