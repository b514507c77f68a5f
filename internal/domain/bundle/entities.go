package bundle

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("bundle not found")
	ErrMissingLoan   = errors.New("bundle references a loan that does not exist")
	ErrEmptyLoanSet  = errors.New("bundle must contain at least one loan")
	ErrInvalidMargin = errors.New("risk multiplier must be greater than zero")
)

// LoanIDList is stored as a JSON array; the bundle holds non-owning
// references by public loan id.
type LoanIDList []string

func (l LoanIDList) Value() (driver.Value, error) {
	if l == nil {
		l = LoanIDList{}
	}
	return json.Marshal(l)
}

func (l *LoanIDList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = LoanIDList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("loan id list: unsupported scan type %T", src)
	}
}

// Bundle is a risk-pooled grouping of loans priced with one derived rate.
// IRate is a snapshot of the last recomputation; every read and mutation
// path re-derives it from the members' current default rates, so the stored
// value is never trusted for pricing decisions.
//
// Active carries no column default: gorm skips zero-valued fields that have
// one, which would turn an inactive insert into an active row. Create paths
// set the flag explicitly instead.
type Bundle struct {
	ID          uint64     `gorm:"primaryKey;column:id" json:"-"`
	BundleID    string     `gorm:"size:32;uniqueIndex:ux_bundles_bundle_id_active" json:"bundle_id"`
	SeqID       uint64     `gorm:"column:seq_id;uniqueIndex:ux_bundles_seq_id" json:"seq_id"`
	LoanIDs     LoanIDList `gorm:"type:json" json:"loan_ids"`
	M           float64    `gorm:"type:decimal(6,4)" json:"m"`
	Name        string     `gorm:"size:255" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Value       float64    `gorm:"type:decimal(18,2)" json:"value"`
	Active      bool       `gorm:"index" json:"active"`
	IRate       float64    `gorm:"type:decimal(8,6)" json:"i_rate"`
	EndDate     time.Time  `json:"end_date"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bundle) TableName() string { return "bundles" }
