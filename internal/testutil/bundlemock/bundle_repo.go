package bundlemock

import (
	"context"

	domain "bundle-backend/internal/domain/bundle"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, b *domain.Bundle) error
	GetByBundleIDFn func(ctx context.Context, bundleID string) (*domain.Bundle, error)
	ListActiveFn    func(ctx context.Context) ([]domain.Bundle, error)
	ListByLoanIDFn  func(ctx context.Context, loanID string) ([]domain.Bundle, error)
	NextSeqIDFn     func(ctx context.Context) (uint64, error)
	SaveFn          func(ctx context.Context, b *domain.Bundle) error
	DeleteFn        func(ctx context.Context, bundleID string) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Bundle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBundleID(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	if m.GetByBundleIDFn != nil {
		return m.GetByBundleIDFn(ctx, bundleID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Bundle, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Bundle, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) NextSeqID(ctx context.Context) (uint64, error) {
	if m.NextSeqIDFn != nil {
		return m.NextSeqIDFn(ctx)
	}
	return 1, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Bundle) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, bundleID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, bundleID)
	}
	return nil
}
