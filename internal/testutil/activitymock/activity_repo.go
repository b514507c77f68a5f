package activitymock

import (
	"context"

	domain "bundle-backend/internal/domain/activity"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, a *domain.Activity) error
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Activity, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Activity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Activity, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
