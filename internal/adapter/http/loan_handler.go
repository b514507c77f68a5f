package http

import (
	"net/http"

	"bundle-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	UserID          string `json:"user_id"          validate:"required,hex32"`
	Purpose         string `json:"purpose"          validate:"required"`
	LoanedAmount    string `json:"loaned_amount"    validate:"required"`
	LoanDuration    string `json:"loan_duration"    validate:"required"`
	PaymentSchedule string `json:"payment_schedule" validate:"required,schedule"`
	Currency        string `json:"currency"         validate:"required,currency"`
}

// Apply handles the loan application intake. Numeric fields arrive as form
// strings; range and enum checks happen in the usecase with field-level
// messages, so nothing is written on bad input.
func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput(req))
	if err != nil {
		if ve, ok := err.(loan.ValidationError); ok {
			details := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				details = append(details, FieldError{Field: fe.Field, Message: fe.Message})
			}
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
		}
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByUser(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

type makePaymentReq struct {
	UserID string  `json:"user_id" validate:"required,hex32"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
}

// MakePayment applies a repayment. Logical failures come back with
// specific messages and must not be retried; the client retries only
// transient upstream errors, manually.
func (h *LoanHandler) MakePayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	var req makePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.MakePayment(c.Request().Context(), loanID, req.Amount, req.UserID); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}

	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
