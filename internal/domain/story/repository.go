package story

import "context"

type Repository interface {
	Create(ctx context.Context, s *Story) error
	GetByStoryID(ctx context.Context, storyID string) (*Story, error)
	// ListActive returns active stories, newest first.
	ListActive(ctx context.Context) ([]Story, error)
	Save(ctx context.Context, s *Story) error
}
