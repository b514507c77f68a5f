package depositmock

import (
	"context"

	domain "bundle-backend/internal/domain/deposit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, c *domain.Capture) error
	GetByOrderIDFn          func(ctx context.Context, orderID string) (*domain.Capture, error)
	GetByOrderIDForUpdateFn func(ctx context.Context, orderID string) (*domain.Capture, error)
	ListUnreconciledFn      func(ctx context.Context) ([]domain.Capture, error)
	SaveFn                  func(ctx context.Context, c *domain.Capture) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Capture) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByOrderID(ctx context.Context, orderID string) (*domain.Capture, error) {
	if m.GetByOrderIDFn != nil {
		return m.GetByOrderIDFn(ctx, orderID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Capture, error) {
	if m.GetByOrderIDForUpdateFn != nil {
		return m.GetByOrderIDForUpdateFn(ctx, orderID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListUnreconciled(ctx context.Context) ([]domain.Capture, error) {
	if m.ListUnreconciledFn != nil {
		return m.ListUnreconciledFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Capture) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
