package uow

import (
	"context"

	"bundle-backend/internal/domain/activity"
	"bundle-backend/internal/domain/deposit"
	"bundle-backend/internal/domain/loan"
	"bundle-backend/internal/domain/user"
)

// Repos bundles the repositories that take part in multi-entity writes,
// all bound to the same transaction.
type Repos struct {
	Users      user.Repository
	Loans      loan.Repository
	Activities activity.Repository
	Deposits   deposit.Repository
}

// UnitOfWork is the only door to all-or-nothing writes across entities.
// The loan payment and deposit completion flows are its two callers.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Concurrent
	// payments against the same loan serialize on that lock.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
