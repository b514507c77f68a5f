package http

import (
	"net/http"

	"bundle-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Country string `json:"country" validate:"required"`
	Region  string `json:"region"  validate:"required"`
	Gender  string `json:"gender"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	rec, err := h.uc.Register(c.Request().Context(), user.RegisterInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *UserHandler) Get(c echo.Context) error {
	rec, err := h.uc.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req user.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	rec, err := h.uc.Update(c.Request().Context(), c.Param("user_id"), req)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

type pictureReq struct {
	URI    string `json:"uri"    validate:"required,url"`
	Width  int    `json:"width"  validate:"required,gt=0"`
	Height int    `json:"height" validate:"required,gt=0"`
}

func (h *UserHandler) SetPicture(c echo.Context) error {
	var req pictureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	rec, err := h.uc.SetPicture(c.Request().Context(), c.Param("user_id"), user.PictureInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}
