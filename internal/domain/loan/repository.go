package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row inside the surrounding
	// transaction so concurrent payments serialize instead of racing.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// ListByUserID returns a user's loans ordered by
	// (sort_order ASC, updated_at DESC).
	ListByUserID(ctx context.Context, userID string) ([]Loan, error)
	// ListByLoanIDs resolves public ids to loans; callers treat a short
	// result as a missing-member error.
	ListByLoanIDs(ctx context.Context, loanIDs []string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
