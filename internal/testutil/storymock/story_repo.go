package storymock

import (
	"context"

	domain "bundle-backend/internal/domain/story"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, s *domain.Story) error
	GetByStoryIDFn func(ctx context.Context, storyID string) (*domain.Story, error)
	ListActiveFn   func(ctx context.Context) ([]domain.Story, error)
	SaveFn         func(ctx context.Context, s *domain.Story) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Story) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByStoryID(ctx context.Context, storyID string) (*domain.Story, error) {
	if m.GetByStoryIDFn != nil {
		return m.GetByStoryIDFn(ctx, storyID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Story, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, s *domain.Story) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
