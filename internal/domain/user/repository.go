package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDForUpdate locks the row for the duration of the surrounding
	// transaction; callers outside a transaction must not use it.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	Save(ctx context.Context, u *User) error
}
