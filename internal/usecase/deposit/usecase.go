package deposit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bundle-backend/internal/domain/activity"
	"bundle-backend/internal/domain/deposit"
	"bundle-backend/internal/domain/loan"
	"bundle-backend/internal/domain/uow"
	"bundle-backend/internal/domain/user"
	"bundle-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("deposit amount must be greater than zero")

type Usecase struct {
	gateway  deposit.Gateway
	captures deposit.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(g deposit.Gateway, captures deposit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{gateway: g, captures: captures, uow: tx}
}

type InitiateOutput struct {
	OrderID     string `json:"order_id"`
	ApprovalURL string `json:"approval_url"`
}

// Initiate creates a gateway order and records the capture row (status
// created) so the order id is known before any money moves.
func (u *Usecase) Initiate(ctx context.Context, userID string, amount float64, currency string) (*InitiateOutput, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !loan.ValidCurrency(loan.Currency(currency)) {
		return nil, fmt.Errorf("unsupported currency %q", currency)
	}

	order, err := u.gateway.CreateOrder(ctx, deposit.CreateOrderInput{
		Amount:      amount,
		Currency:    currency,
		Description: fmt.Sprintf("Deposit of %.2f %s", amount, currency),
		CustomID:    userID,
	})
	if err != nil {
		return nil, err
	}

	c := &deposit.Capture{
		CaptureID: id.NewID32(),
		OrderID:   order.OrderID,
		UserID:    userID,
		Amount:    amount,
		Currency:  currency,
		Status:    deposit.StatusCreated,
	}
	if err := u.captures.Create(ctx, c); err != nil {
		return nil, err
	}
	return &InitiateOutput{OrderID: order.OrderID, ApprovalURL: order.ApprovalURL}, nil
}

type CompleteOutput struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Balance   float64 `json:"balance"`
}

// Complete captures the order at the gateway, then credits the user's
// balance, appends the deposit activity, and flips the capture row to
// applied, all in one transaction. The unique order id makes
// completion idempotent: a repeat callback for an applied order returns
// ErrAlreadyApplied without re-capturing or double-crediting, so retrying
// after a post-capture failure is safe. A row left in "captured" means
// money moved externally but was not credited; those rows are surfaced by
// Unreconciled for manual follow-up.
func (u *Usecase) Complete(ctx context.Context, orderID string) (*CompleteOutput, error) {
	pre, err := u.captures.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deposit.ErrNotFound
		}
		return nil, err
	}
	if pre.Status == deposit.StatusApplied {
		return nil, deposit.ErrAlreadyApplied
	}

	// Re-capturing an already-captured order is rejected by the gateway;
	// only rows still in "created" go out to it again.
	var captured *deposit.CaptureResult
	if pre.Status == deposit.StatusCreated {
		captured, err = u.gateway.CaptureOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		pre.Status = deposit.StatusCaptured
		pre.PaymentID = captured.PaymentID
		if captured.Amount > 0 {
			pre.Amount = captured.Amount
		}
		// The marker write can fail after money has already moved at the
		// gateway. Don't bail: the balance transaction below re-applies the
		// captured state to the row it locks and persists everything
		// together.
		_ = u.captures.Save(ctx, pre)
	}

	var out CompleteOutput
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Deposits.GetByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if row.Status == deposit.StatusApplied {
			return deposit.ErrAlreadyApplied
		}
		if row.Status == deposit.StatusCreated && captured != nil {
			row.Status = deposit.StatusCaptured
			row.PaymentID = captured.PaymentID
			if captured.Amount > 0 {
				row.Amount = captured.Amount
			}
		}

		payer, err := r.Users.GetByUserIDForUpdate(ctx, row.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}
		payer.Balance += row.Amount
		if err := r.Users.Save(ctx, payer); err != nil {
			return err
		}

		act := &activity.Activity{
			ActivityID:  id.NewID32(),
			UserID:      row.UserID,
			Type:        activity.TypeDeposit,
			Amount:      row.Amount,
			Date:        time.Now().UTC(),
			Status:      activity.StatusCompleted,
			Description: fmt.Sprintf("Deposit of $%.2f", row.Amount),
			ReferenceID: row.PaymentID,
		}
		if err := r.Activities.Create(ctx, act); err != nil {
			return err
		}

		row.Status = deposit.StatusApplied
		if err := r.Deposits.Save(ctx, row); err != nil {
			return err
		}

		out = CompleteOutput{PaymentID: row.PaymentID, Amount: row.Amount, Balance: payer.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Unreconciled lists captures where the gateway took the money but the
// balance credit never committed.
func (u *Usecase) Unreconciled(ctx context.Context) ([]deposit.Capture, error) {
	return u.captures.ListUnreconciled(ctx)
}
