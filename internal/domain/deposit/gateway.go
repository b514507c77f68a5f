package deposit

import "context"

// Gateway is the payment-processor port. The PayPal adapter implements it;
// tests substitute a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error)
}

type CreateOrderInput struct {
	Amount      float64
	Currency    string
	Description string
	// CustomID travels through the gateway and comes back on capture;
	// carries the user id.
	CustomID string
}

type Order struct {
	OrderID     string
	ApprovalURL string
}

type CaptureResult struct {
	PaymentID string
	Amount    float64
	Status    string
	CustomID  string
}
