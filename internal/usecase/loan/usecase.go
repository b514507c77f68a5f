package loan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bundle-backend/internal/domain/loan"
	"bundle-backend/internal/domain/uow"
	"bundle-backend/internal/domain/user"
	"bundle-backend/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrBelowMinInstallment = errors.New("payment below minimum installment")
	ErrExceedsRemaining    = errors.New("payment exceeds remaining loan balance")
)

// FieldError carries a field-level validation message back to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates intake failures; no write happens when one is
// returned.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork

	maxAmount   float64
	maxDuration int
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork, maxAmount float64, maxDurationWeeks int) *Usecase {
	return &Usecase{repo: r, uow: tx, maxAmount: maxAmount, maxDuration: maxDurationWeeks}
}

// ApplyInput mirrors the intake form: numeric fields arrive as strings and
// are parsed here with field-level errors.
type ApplyInput struct {
	UserID          string `json:"user_id"`
	Purpose         string `json:"purpose"`
	LoanedAmount    string `json:"loaned_amount"`
	LoanDuration    string `json:"loan_duration"`
	PaymentSchedule string `json:"payment_schedule"`
	Currency        string `json:"currency"`
}

type LoanDTO struct {
	LoanID            string    `json:"loan_id"`
	UserID            string    `json:"user_id"`
	Purpose           string    `json:"purpose"`
	LoanedAmount      float64   `json:"loaned_amount"`
	FundedAmount      float64   `json:"funded_amount"`
	LoanDurationWeeks int       `json:"loan_duration_weeks"`
	PaymentSchedule   string    `json:"payment_schedule"`
	RequestStatus     string    `json:"request_status"`
	RepayStatus       string    `json:"repay_status"`
	AmountRepaid      float64   `json:"amount_repaid"`
	Currency          string    `json:"currency"`
	DefaultRate       float64   `json:"default_rate"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.LoanID,
		UserID:            l.UserID,
		Purpose:           string(l.Purpose),
		LoanedAmount:      l.LoanedAmount,
		FundedAmount:      l.FundedAmount,
		LoanDurationWeeks: l.LoanDurationWeeks,
		PaymentSchedule:   string(l.PaymentSchedule),
		RequestStatus:     string(l.RequestStatus),
		RepayStatus:       string(l.RepayStatus),
		AmountRepaid:      l.AmountRepaid,
		Currency:          string(l.Currency),
		DefaultRate:       l.DefaultRate,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// Apply validates the intake fields and creates a pending loan. Validation
// failures never write.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	var ve ValidationError

	if in.UserID == "" || len(in.UserID) != 32 {
		ve = append(ve, FieldError{Field: "user_id", Message: "must be a 32-char id"})
	}
	if !loan.ValidPurpose(loan.Purpose(in.Purpose)) {
		ve = append(ve, FieldError{Field: "purpose", Message: "must be one of the loan purpose categories"})
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.LoanedAmount), 64)
	switch {
	case err != nil || amount <= 0:
		ve = append(ve, FieldError{Field: "loaned_amount", Message: "must be a valid number greater than 0"})
	case amount > u.maxAmount:
		ve = append(ve, FieldError{Field: "loaned_amount", Message: fmt.Sprintf("maximum loan amount is %.0f", u.maxAmount)})
	}

	weeks, err := strconv.Atoi(strings.TrimSpace(in.LoanDuration))
	switch {
	case err != nil || weeks <= 0:
		ve = append(ve, FieldError{Field: "loan_duration", Message: "must be a valid number of weeks greater than 0"})
	case weeks > u.maxDuration:
		ve = append(ve, FieldError{Field: "loan_duration", Message: fmt.Sprintf("maximum loan duration is %d weeks", u.maxDuration)})
	}

	if !loan.ValidSchedule(loan.PaymentSchedule(in.PaymentSchedule)) {
		ve = append(ve, FieldError{Field: "payment_schedule", Message: "must be weekly, biweekly, monthly or quarterly"})
	}
	if !loan.ValidCurrency(loan.Currency(in.Currency)) {
		ve = append(ve, FieldError{Field: "currency", Message: "must be USD, EUR or GBP"})
	}

	if len(ve) > 0 {
		return nil, ve
	}

	l := &loan.Loan{
		LoanID:            id.NewID32(),
		UserID:            in.UserID,
		Purpose:           loan.Purpose(in.Purpose),
		LoanedAmount:      amount,
		FundedAmount:      0,
		LoanDurationWeeks: weeks,
		PaymentSchedule:   loan.PaymentSchedule(in.PaymentSchedule),
		RequestStatus:     loan.RequestPending,
		RepayStatus:       loan.RepayPending,
		AmountRepaid:      0,
		Currency:          loan.Currency(in.Currency),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

// List returns a user's loans ordered (sort_order ASC, updated_at DESC);
// paid loans sink to the bottom via SortOrderPaid.
func (u *Usecase) List(ctx context.Context, userID string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// installmentWeeks maps a schedule to its period length in weeks.
func installmentWeeks(s loan.PaymentSchedule) int {
	switch s {
	case loan.ScheduleBiweekly:
		return 2
	case loan.ScheduleMonthly:
		return 4
	case loan.ScheduleQuarterly:
		return 13
	default:
		return 1
	}
}

// minimumInstallment is the per-period amount implied by the principal and
// the schedule; the final payment may be smaller when the remainder is.
func minimumInstallment(l *loan.Loan) float64 {
	n := l.LoanDurationWeeks / installmentWeeks(l.PaymentSchedule)
	if n < 1 {
		n = 1
	}
	return l.LoanedAmount / float64(n)
}

// MakePayment applies a repayment to the loan ledger and debits the payer's
// balance as one atomic unit. The loan row is locked for the duration; the
// user is re-read inside the same transaction, so concurrent payments
// serialize and lost updates cannot occur. Logical failures (insufficient
// balance, not found, invalid amount) leave both entities untouched and
// must not be retried; only transient backend errors are retryable, by the
// caller.
func (u *Usecase) MakePayment(ctx context.Context, loanID string, amount float64, userID string) error {
	if amount <= 0 {
		return loan.ErrInvalidAmount
	}

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		payer, err := r.Users.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		if l.FullyRepaid() {
			return loan.ErrAlreadyPaid
		}
		remaining := l.LoanedAmount - l.AmountRepaid
		if amount > remaining {
			return ErrExceedsRemaining
		}
		if amount < minimumInstallment(l) && amount < remaining {
			return ErrBelowMinInstallment
		}

		newRepaid := l.AmountRepaid + amount
		newBalance := payer.Balance - amount
		if newBalance < 0 {
			return user.ErrInsufficientBalance
		}

		l.AmountRepaid = newRepaid
		if l.FullyRepaid() {
			// Ledger and status flip commit in the same write, exactly once.
			l.RepayStatus = loan.RepayPaid
			l.RequestStatus = loan.RequestCompleted
			l.SortOrder = loan.SortOrderPaid
		} else if l.RepayStatus == loan.RepayPending {
			l.RepayStatus = loan.RepayInRepayment
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		payer.Balance = newBalance
		return r.Users.Save(ctx, payer)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		return err
	}
	return nil
}
