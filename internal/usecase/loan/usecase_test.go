package loan

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "bundle-backend/internal/domain/loan"
	"bundle-backend/internal/domain/uow"
	userDomain "bundle-backend/internal/domain/user"
	"bundle-backend/internal/testutil/loanmock"
	"bundle-backend/internal/testutil/uowmock"
	"bundle-backend/internal/testutil/usermock"
)

const (
	testUserID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testLoanID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func validApply() ApplyInput {
	return ApplyInput{
		UserID:          testUserID,
		Purpose:         "education",
		LoanedAmount:    "1000",
		LoanDuration:    "20",
		PaymentSchedule: "weekly",
		Currency:        "USD",
	}
}

func newTestUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return NewUsecase(repo, tx, 10_000, 104)
}

// paymentFixture wires a loan and its payer through a passthrough UoW so
// MakePayment runs its whole callback against in-memory state.
func paymentFixture(l *domain.Loan, u *userDomain.User) (*Usecase, *int, *int) {
	loanSaves, userSaves := 0, 0
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*domain.Loan, error) {
			if loanID != l.LoanID {
				return nil, errors.New("unknown loan")
			}
			return l, nil
		},
		SaveFn: func(ctx context.Context, got *domain.Loan) error {
			loanSaves++
			return nil
		},
	}
	users := &usermock.Repo{
		GetByUserIDForUpdateFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if userID != u.UserID {
				return nil, errors.New("unknown user")
			}
			return u, nil
		},
		SaveFn: func(ctx context.Context, got *userDomain.User) error {
			userSaves++
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Users: users, Loans: loans})
	return newTestUsecase(loans, tx), &loanSaves, &userSaves
}

func TestApply_Success(t *testing.T) {
	created := false
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			created = true
			return nil
		},
	}
	uc := newTestUsecase(repo, uowmock.New())

	dto, err := uc.Apply(context.Background(), validApply())
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if !created {
		t.Fatalf("Create not called")
	}
	if len(dto.LoanID) != 32 {
		t.Fatalf("LoanID length: %d", len(dto.LoanID))
	}
	if dto.RequestStatus != string(domain.RequestPending) || dto.RepayStatus != string(domain.RepayPending) {
		t.Fatalf("fresh loan statuses: %s/%s", dto.RequestStatus, dto.RepayStatus)
	}
	if dto.LoanedAmount != 1000 || dto.LoanDurationWeeks != 20 {
		t.Fatalf("parsed fields: %v / %v", dto.LoanedAmount, dto.LoanDurationWeeks)
	}
	if dto.AmountRepaid != 0 || dto.FundedAmount != 0 {
		t.Fatalf("fresh loan must start at zero")
	}
}

func TestApply_RejectsAboveCeilings(t *testing.T) {
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatalf("Create must not be called on validation failure")
			return nil
		},
	}
	uc := newTestUsecase(repo, uowmock.New())

	in := validApply()
	in.LoanedAmount = "15000"
	in.LoanDuration = "200"
	_, err := uc.Apply(context.Background(), in)

	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(ve) != 2 {
		t.Fatalf("want 2 field errors, got %d: %v", len(ve), ve)
	}
	if !strings.Contains(ve.Error(), "maximum loan amount is 10000") {
		t.Fatalf("amount ceiling message missing: %v", ve)
	}
	if !strings.Contains(ve.Error(), "maximum loan duration is 104 weeks") {
		t.Fatalf("duration ceiling message missing: %v", ve)
	}
}

func TestApply_RejectsMalformedNumbers(t *testing.T) {
	uc := newTestUsecase(&loanmock.Repo{}, uowmock.New())

	for _, tc := range []struct {
		field string
		mut   func(*ApplyInput)
	}{
		{"loaned_amount", func(in *ApplyInput) { in.LoanedAmount = "abc" }},
		{"loaned_amount", func(in *ApplyInput) { in.LoanedAmount = "-5" }},
		{"loan_duration", func(in *ApplyInput) { in.LoanDuration = "12.5" }},
		{"purpose", func(in *ApplyInput) { in.Purpose = "yachts" }},
		{"payment_schedule", func(in *ApplyInput) { in.PaymentSchedule = "daily" }},
		{"currency", func(in *ApplyInput) { in.Currency = "JPY" }},
	} {
		in := validApply()
		tc.mut(&in)
		_, err := uc.Apply(context.Background(), in)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tc.field, err)
		}
		if ve[0].Field != tc.field {
			t.Fatalf("want error on %s, got %s", tc.field, ve[0].Field)
		}
	}
}

// Final payment: loan 1000 repaid 800, payer holds 300, pays 200. The
// ledger, both statuses, the sort order and the balance all flip together.
func TestMakePayment_FinalPaymentCompletesLoan(t *testing.T) {
	l := &domain.Loan{
		LoanID:            testLoanID,
		UserID:            testUserID,
		LoanedAmount:      1000,
		AmountRepaid:      800,
		LoanDurationWeeks: 20,
		PaymentSchedule:   domain.ScheduleWeekly,
		RequestStatus:     domain.RequestApproved,
		RepayStatus:       domain.RepayInRepayment,
	}
	u := &userDomain.User{UserID: testUserID, Balance: 300}
	uc, loanSaves, userSaves := paymentFixture(l, u)

	if err := uc.MakePayment(context.Background(), testLoanID, 200, testUserID); err != nil {
		t.Fatalf("MakePayment err: %v", err)
	}
	if l.AmountRepaid != 1000 {
		t.Fatalf("amount_repaid=%v", l.AmountRepaid)
	}
	if l.RepayStatus != domain.RepayPaid || l.RequestStatus != domain.RequestCompleted {
		t.Fatalf("statuses after final payment: %s/%s", l.RepayStatus, l.RequestStatus)
	}
	if l.SortOrder != domain.SortOrderPaid {
		t.Fatalf("sort_order=%d", l.SortOrder)
	}
	if u.Balance != 100 {
		t.Fatalf("balance=%v", u.Balance)
	}
	if *loanSaves != 1 || *userSaves != 1 {
		t.Fatalf("saves: loan=%d user=%d", *loanSaves, *userSaves)
	}
}

// Insufficient balance: same loan, payer holds only 100. Nothing is written.
func TestMakePayment_InsufficientBalanceIsNoop(t *testing.T) {
	l := &domain.Loan{
		LoanID:            testLoanID,
		UserID:            testUserID,
		LoanedAmount:      1000,
		AmountRepaid:      800,
		LoanDurationWeeks: 20,
		PaymentSchedule:   domain.ScheduleWeekly,
		RepayStatus:       domain.RepayInRepayment,
	}
	u := &userDomain.User{UserID: testUserID, Balance: 100}
	uc, loanSaves, userSaves := paymentFixture(l, u)

	err := uc.MakePayment(context.Background(), testLoanID, 200, testUserID)
	if !errors.Is(err, userDomain.ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}
	if l.AmountRepaid != 800 || l.RepayStatus != domain.RepayInRepayment {
		t.Fatalf("loan mutated on failure: %+v", l)
	}
	if u.Balance != 100 {
		t.Fatalf("balance mutated on failure: %v", u.Balance)
	}
	if *loanSaves != 0 || *userSaves != 0 {
		t.Fatalf("saves on failure: loan=%d user=%d", *loanSaves, *userSaves)
	}
}

func TestMakePayment_RejectsOverAndUnderpayment(t *testing.T) {
	mk := func() (*domain.Loan, *userDomain.User) {
		return &domain.Loan{
			LoanID:            testLoanID,
			UserID:            testUserID,
			LoanedAmount:      1000,
			AmountRepaid:      500,
			LoanDurationWeeks: 20,
			PaymentSchedule:   domain.ScheduleWeekly, // min installment 50
			RepayStatus:       domain.RepayInRepayment,
		}, &userDomain.User{UserID: testUserID, Balance: 10_000}
	}

	l, u := mk()
	uc, _, _ := paymentFixture(l, u)
	if err := uc.MakePayment(context.Background(), testLoanID, 600, testUserID); !errors.Is(err, ErrExceedsRemaining) {
		t.Fatalf("overpayment: want ErrExceedsRemaining, got %v", err)
	}

	l, u = mk()
	uc, _, _ = paymentFixture(l, u)
	if err := uc.MakePayment(context.Background(), testLoanID, 10, testUserID); !errors.Is(err, ErrBelowMinInstallment) {
		t.Fatalf("underpayment: want ErrBelowMinInstallment, got %v", err)
	}

	// A sub-installment amount that clears the remainder is the final
	// payment and is allowed.
	l, u = mk()
	l.AmountRepaid = 980
	uc, _, _ = paymentFixture(l, u)
	if err := uc.MakePayment(context.Background(), testLoanID, 20, testUserID); err != nil {
		t.Fatalf("final remainder payment: %v", err)
	}
	if l.RepayStatus != domain.RepayPaid {
		t.Fatalf("remainder payment did not complete the loan")
	}
}

func TestMakePayment_AlreadyPaidAndInvalidAmount(t *testing.T) {
	l := &domain.Loan{
		LoanID:            testLoanID,
		UserID:            testUserID,
		LoanedAmount:      1000,
		AmountRepaid:      1000,
		LoanDurationWeeks: 20,
		PaymentSchedule:   domain.ScheduleWeekly,
		RepayStatus:       domain.RepayPaid,
	}
	u := &userDomain.User{UserID: testUserID, Balance: 500}
	uc, _, _ := paymentFixture(l, u)

	if err := uc.MakePayment(context.Background(), testLoanID, 50, testUserID); !errors.Is(err, domain.ErrAlreadyPaid) {
		t.Fatalf("want ErrAlreadyPaid, got %v", err)
	}
	if err := uc.MakePayment(context.Background(), testLoanID, 0, testUserID); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount for zero, got %v", err)
	}
	if err := uc.MakePayment(context.Background(), testLoanID, -5, testUserID); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount for negative, got %v", err)
	}
}

func TestMakePayment_PendingLoanMovesToInRepayment(t *testing.T) {
	l := &domain.Loan{
		LoanID:            testLoanID,
		UserID:            testUserID,
		LoanedAmount:      1000,
		AmountRepaid:      0,
		LoanDurationWeeks: 20,
		PaymentSchedule:   domain.ScheduleWeekly,
		RepayStatus:       domain.RepayPending,
	}
	u := &userDomain.User{UserID: testUserID, Balance: 500}
	uc, _, _ := paymentFixture(l, u)

	if err := uc.MakePayment(context.Background(), testLoanID, 50, testUserID); err != nil {
		t.Fatalf("MakePayment err: %v", err)
	}
	if l.RepayStatus != domain.RepayInRepayment {
		t.Fatalf("repay_status=%s", l.RepayStatus)
	}
}

func TestMinimumInstallment_Schedules(t *testing.T) {
	for _, tc := range []struct {
		schedule domain.PaymentSchedule
		weeks    int
		want     float64
	}{
		{domain.ScheduleWeekly, 20, 50},
		{domain.ScheduleBiweekly, 20, 100},
		{domain.ScheduleMonthly, 20, 200},
		{domain.ScheduleQuarterly, 26, 500},
		{domain.ScheduleQuarterly, 4, 1000}, // shorter than one period: single installment
	} {
		l := &domain.Loan{LoanedAmount: 1000, LoanDurationWeeks: tc.weeks, PaymentSchedule: tc.schedule}
		if got := minimumInstallment(l); got != tc.want {
			t.Fatalf("%s/%dw: want %v, got %v", tc.schedule, tc.weeks, tc.want, got)
		}
	}
}
