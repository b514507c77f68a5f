package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, no JSON type) ---

type userSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	UserID               string         `gorm:"size:32;column:user_id"`
	Name                 string         `gorm:"column:name"`
	Email                string         `gorm:"column:email"`
	Country              string         `gorm:"column:country"`
	Region               string         `gorm:"column:region"`
	Gender               string         `gorm:"type:text;column:gender"` // ← no enum
	RiskScore            float64        `gorm:"column:risk_score"`
	Balance              float64        `gorm:"column:balance"`
	ProfilePictureURI    string         `gorm:"column:profile_picture_uri"`
	ProfilePictureWidth  int            `gorm:"column:profile_picture_width"`
	ProfilePictureHeight int            `gorm:"column:profile_picture_height"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type loanSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	LoanID            string         `gorm:"size:32;column:loan_id"`
	UserID            string         `gorm:"size:32;column:user_id"`
	Purpose           string         `gorm:"column:purpose"`
	LoanedAmount      float64        `gorm:"column:loaned_amount"`
	FundedAmount      float64        `gorm:"column:funded_amount"`
	LoanDurationWeeks int            `gorm:"column:loan_duration_weeks"`
	PaymentSchedule   string         `gorm:"type:text;column:payment_schedule"`
	RequestStatus     string         `gorm:"type:text;column:request_status"`
	RepayStatus       string         `gorm:"type:text;column:repay_status"`
	AmountRepaid      float64        `gorm:"column:amount_repaid"`
	Currency          string         `gorm:"type:text;column:currency"`
	DefaultRate       float64        `gorm:"column:default_rate"`
	SortOrder         int            `gorm:"column:sort_order"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type bundleSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	BundleID    string         `gorm:"size:32;column:bundle_id"`
	SeqID       uint64         `gorm:"uniqueIndex;column:seq_id"`
	LoanIDs     string         `gorm:"type:text;column:loan_ids"` // ← serialized JSON
	M           float64        `gorm:"column:m"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	Value       float64        `gorm:"column:value"`
	Active      bool           `gorm:"column:active"`
	IRate       float64        `gorm:"column:i_rate"`
	EndDate     time.Time      `gorm:"column:end_date"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (bundleSQLite) TableName() string { return "bundles" }

type activitySQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	ActivityID  string         `gorm:"size:32;column:activity_id"`
	UserID      string         `gorm:"size:32;column:user_id"`
	Type        string         `gorm:"type:text;column:type"`
	Amount      float64        `gorm:"column:amount"`
	Date        time.Time      `gorm:"column:date"`
	Status      string         `gorm:"type:text;column:status"`
	Description string         `gorm:"column:description"`
	ReferenceID string         `gorm:"column:reference_id"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (activitySQLite) TableName() string { return "activities" }

type storySQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	StoryID     string         `gorm:"size:32;column:story_id"`
	UserID      string         `gorm:"size:32;column:user_id"`
	LoanID      string         `gorm:"size:32;column:loan_id"`
	Title       string         `gorm:"column:title"`
	Description string         `gorm:"column:description"`
	ImageURL    string         `gorm:"column:image_url"`
	Purpose     string         `gorm:"column:purpose"`
	Amount      float64        `gorm:"column:amount"`
	Currency    string         `gorm:"column:currency"`
	Likes       int            `gorm:"column:likes"`
	Status      string         `gorm:"type:text;column:status"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (storySQLite) TableName() string { return "stories" }

type depositCaptureSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	CaptureID string         `gorm:"size:32;column:capture_id"`
	OrderID   string         `gorm:"size:64;uniqueIndex;column:order_id"`
	UserID    string         `gorm:"size:32;column:user_id"`
	Amount    float64        `gorm:"column:amount"`
	Currency  string         `gorm:"column:currency"`
	Status    string         `gorm:"type:text;column:status"`
	PaymentID string         `gorm:"column:payment_id"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (depositCaptureSQLite) TableName() string { return "deposit_captures" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{}, &loanSQLite{}, &bundleSQLite{},
		&activitySQLite{}, &storySQLite{}, &depositCaptureSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
