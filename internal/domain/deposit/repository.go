package deposit

import "context"

type Repository interface {
	Create(ctx context.Context, c *Capture) error
	GetByOrderID(ctx context.Context, orderID string) (*Capture, error)
	// GetByOrderIDForUpdate locks the capture row inside the surrounding
	// transaction; completion paths use it to serialize callbacks.
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*Capture, error)
	// ListUnreconciled returns captured-but-unapplied rows, oldest first.
	ListUnreconciled(ctx context.Context) ([]Capture, error)
	Save(ctx context.Context, c *Capture) error
}
