package mysql

import (
	"context"

	storyDomain "bundle-backend/internal/domain/story"

	"gorm.io/gorm"
)

type StoryRepository struct{ db *gorm.DB }

func NewStoryRepository(db *gorm.DB) *StoryRepository { return &StoryRepository{db: db} }

func (r *StoryRepository) Create(ctx context.Context, s *storyDomain.Story) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StoryRepository) Save(ctx context.Context, s *storyDomain.Story) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StoryRepository) GetByStoryID(ctx context.Context, storyID string) (*storyDomain.Story, error) {
	var out storyDomain.Story
	res := r.db.WithContext(ctx).Where("story_id = ?", storyID).First(&out)
	return &out, res.Error
}

func (r *StoryRepository) ListActive(ctx context.Context) ([]storyDomain.Story, error) {
	var out []storyDomain.Story
	res := r.db.WithContext(ctx).
		Where("status = ?", storyDomain.StatusActive).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
