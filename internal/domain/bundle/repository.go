package bundle

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bundle) error
	GetByBundleID(ctx context.Context, bundleID string) (*Bundle, error)
	// ListActive returns active bundles, newest first.
	ListActive(ctx context.Context) ([]Bundle, error)
	// ListByLoanID returns bundles whose member set contains the loan.
	ListByLoanID(ctx context.Context, loanID string) ([]Bundle, error)
	// NextSeqID returns the next sequential bundle number (1 when empty).
	NextSeqID(ctx context.Context) (uint64, error)
	Save(ctx context.Context, b *Bundle) error
	Delete(ctx context.Context, bundleID string) error
}
