package activity

import "context"

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	// ListByUserID returns all of a user's activities with no ordering
	// guarantee; callers sort in memory (the backing composite index on
	// (user_id, date) may not exist).
	ListByUserID(ctx context.Context, userID string) ([]Activity, error)
}
