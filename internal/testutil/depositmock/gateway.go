package depositmock

import (
	"context"

	"bundle-backend/internal/domain/deposit"
)

// Gateway is a function-backed mock that satisfies deposit.Gateway.
type Gateway struct {
	CreateOrderFn  func(ctx context.Context, in deposit.CreateOrderInput) (*deposit.Order, error)
	CaptureOrderFn func(ctx context.Context, orderID string) (*deposit.CaptureResult, error)
}

func (m *Gateway) CreateOrder(ctx context.Context, in deposit.CreateOrderInput) (*deposit.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, in)
	}
	return nil, context.Canceled
}

func (m *Gateway) CaptureOrder(ctx context.Context, orderID string) (*deposit.CaptureResult, error) {
	if m.CaptureOrderFn != nil {
		return m.CaptureOrderFn(ctx, orderID)
	}
	return nil, context.Canceled
}
