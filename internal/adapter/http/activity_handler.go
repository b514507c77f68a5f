package http

import (
	"net/http"
	"strconv"

	"bundle-backend/internal/usecase/activity"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct{ uc *activity.Usecase }

func NewActivityHandler(uc *activity.Usecase) *ActivityHandler { return &ActivityHandler{uc: uc} }

// Recent lists the user's newest activities; ?limit= caps the result
// (default 10).
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = n
	}
	as, err := h.uc.Recent(c.Request().Context(), c.Param("user_id"), limit)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, as)
}
