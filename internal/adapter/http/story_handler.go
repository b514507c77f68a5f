package http

import (
	"net/http"

	"bundle-backend/internal/usecase/story"

	"github.com/labstack/echo/v4"
)

type StoryHandler struct{ uc *story.Usecase }

func NewStoryHandler(uc *story.Usecase) *StoryHandler { return &StoryHandler{uc: uc} }

type shareStoryReq struct {
	UserID      string `json:"user_id"     validate:"required,hex32"`
	LoanID      string `json:"loan_id"     validate:"required,hex32"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

func (h *StoryHandler) Share(c echo.Context) error {
	var req shareStoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.Share(c.Request().Context(), story.ShareInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StoryHandler) Feed(c echo.Context) error {
	ss, err := h.uc.Feed(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *StoryHandler) Like(c echo.Context) error {
	s, err := h.uc.Like(c.Request().Context(), c.Param("story_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
