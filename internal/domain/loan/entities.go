package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("payment amount must be greater than zero")
	ErrAlreadyPaid   = errors.New("loan is already fully repaid")
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

type RepayStatus string

const (
	RepayPending     RepayStatus = "pending"
	RepayInRepayment RepayStatus = "in_repayment"
	RepayPaid        RepayStatus = "paid"
	RepayDefaulted   RepayStatus = "defaulted"
)

type PaymentSchedule string

const (
	ScheduleWeekly    PaymentSchedule = "weekly"
	ScheduleBiweekly  PaymentSchedule = "biweekly"
	ScheduleMonthly   PaymentSchedule = "monthly"
	ScheduleQuarterly PaymentSchedule = "quarterly"
)

func ValidSchedule(s PaymentSchedule) bool {
	switch s {
	case ScheduleWeekly, ScheduleBiweekly, ScheduleMonthly, ScheduleQuarterly:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func ValidCurrency(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

type Purpose string

// The fifteen sectors the risk model scores against.
const (
	PurposeAgriculture    Purpose = "agriculture"
	PurposeArts           Purpose = "arts"
	PurposeClothing       Purpose = "clothing"
	PurposeConstruction   Purpose = "construction"
	PurposeEducation      Purpose = "education"
	PurposeEntertainment  Purpose = "entertainment"
	PurposeFood           Purpose = "food"
	PurposeHealth         Purpose = "health"
	PurposeHousing        Purpose = "housing"
	PurposeManufacturing  Purpose = "manufacturing"
	PurposePersonalUse    Purpose = "personal_use"
	PurposeRetail         Purpose = "retail"
	PurposeServices       Purpose = "services"
	PurposeTransportation Purpose = "transportation"
	PurposeWholesale      Purpose = "wholesale"
)

var Purposes = []Purpose{
	PurposeAgriculture, PurposeArts, PurposeClothing, PurposeConstruction,
	PurposeEducation, PurposeEntertainment, PurposeFood, PurposeHealth,
	PurposeHousing, PurposeManufacturing, PurposePersonalUse, PurposeRetail,
	PurposeServices, PurposeTransportation, PurposeWholesale,
}

func ValidPurpose(p Purpose) bool {
	for _, v := range Purposes {
		if p == v {
			return true
		}
	}
	return false
}

// SortOrderPaid pushes fully repaid loans to the bottom of listings.
const SortOrderPaid = 1000

// Loan is a borrowing request plus its repayment ledger.
// Invariants: AmountRepaid <= LoanedAmount at all times, and the
// paid/completed status flip happens in the same write as the ledger
// update that reaches the principal.
type Loan struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID            string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	UserID            string          `gorm:"size:32;index:idx_loans_user_active" json:"user_id"`
	Purpose           Purpose         `gorm:"size:32" json:"purpose"`
	LoanedAmount      float64         `gorm:"type:decimal(18,2)" json:"loaned_amount"`
	FundedAmount      float64         `gorm:"type:decimal(18,2);default:0" json:"funded_amount"`
	LoanDurationWeeks int             `gorm:"column:loan_duration_weeks" json:"loan_duration_weeks"`
	PaymentSchedule   PaymentSchedule `gorm:"type:enum('weekly','biweekly','monthly','quarterly')" json:"payment_schedule"`
	RequestStatus     RequestStatus   `gorm:"type:enum('pending','approved','rejected','completed');default:'pending'" json:"request_status"`
	RepayStatus       RepayStatus     `gorm:"type:enum('pending','in_repayment','paid','defaulted');default:'pending'" json:"repay_status"`
	AmountRepaid      float64         `gorm:"type:decimal(18,2);default:0" json:"amount_repaid"`
	Currency          Currency        `gorm:"type:enum('USD','EUR','GBP')" json:"currency"`
	// Estimated probability of non-repayment, in [0,1]. Input to bundle pricing.
	DefaultRate float64 `gorm:"type:decimal(6,4);default:0" json:"default_rate"`
	SortOrder   int     `gorm:"default:0;index:idx_loans_sort" json:"sort_order"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// FullyRepaid reports whether the ledger has reached the principal.
func (l *Loan) FullyRepaid() bool { return l.AmountRepaid >= l.LoanedAmount }
