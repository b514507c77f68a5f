package mysql

import (
	"context"

	activityDomain "bundle-backend/internal/domain/activity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Create(ctx context.Context, a *activityDomain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) ListByUserID(ctx context.Context, userID string) ([]activityDomain.Activity, error) {
	var out []activityDomain.Activity
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out)
	return out, res.Error
}
