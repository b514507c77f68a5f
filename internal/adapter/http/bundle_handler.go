package http

import (
	"net/http"
	"time"

	"bundle-backend/internal/usecase/bundle"

	"github.com/labstack/echo/v4"
)

type BundleHandler struct{ uc *bundle.Usecase }

func NewBundleHandler(uc *bundle.Usecase) *BundleHandler { return &BundleHandler{uc: uc} }

type createBundleReq struct {
	LoanIDs     []string  `json:"loan_ids"    validate:"required,min=1,dive,hex32"`
	M           float64   `json:"m"           validate:"required,gt=0"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description"`
	Value       float64   `json:"value"       validate:"required,gt=0"`
	EndDate     time.Time `json:"end_date"    validate:"required"`
}

func (h *BundleHandler) Create(c echo.Context) error {
	var req createBundleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), bundle.CreateInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BundleHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("bundle_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BundleHandler) ListActive(c echo.Context) error {
	dtos, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *BundleHandler) ListByLoan(c echo.Context) error {
	dtos, err := h.uc.ListByLoanID(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *BundleHandler) Update(c echo.Context) error {
	var req bundle.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("bundle_id"), req)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BundleHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("bundle_id")); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
