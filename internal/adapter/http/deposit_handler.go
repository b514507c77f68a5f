package http

import (
	"errors"
	"net/http"

	"bundle-backend/internal/adapter/paypal"
	"bundle-backend/internal/usecase/deposit"

	"github.com/labstack/echo/v4"
)

type DepositHandler struct{ uc *deposit.Usecase }

func NewDepositHandler(uc *deposit.Usecase) *DepositHandler { return &DepositHandler{uc: uc} }

type initiateDepositReq struct {
	UserID   string  `json:"user_id"  validate:"required,hex32"`
	Amount   float64 `json:"amount"   validate:"required,gt=0,dec2"`
	Currency string  `json:"currency" validate:"required,currency"`
}

func (h *DepositHandler) Initiate(c echo.Context) error {
	var req initiateDepositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Initiate(c.Request().Context(), req.UserID, req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, paypal.ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, deposit.ErrInvalidAmount) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

// Capture is the redirect-callback leg: the payer approved the order and
// came back with its token.
func (h *DepositHandler) Capture(c echo.Context) error {
	orderID := c.Param("order_id")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing order_id path param"})
	}
	out, err := h.uc.Complete(c.Request().Context(), orderID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Unreconciled exposes captures whose balance credit never committed;
// operators work this queue by hand.
func (h *DepositHandler) Unreconciled(c echo.Context) error {
	rows, err := h.uc.Unreconciled(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
