package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"libgo-server/internal/dto"
	"libgo-server/internal/model"
	"libgo-server/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if user.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	created, err := h.userService.Register(ctx, &user)
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(http.StatusOK, map[string]string{"message": "User already exists"})
	}

	return c.JSON(http.StatusCreated, &user)
}

func (h *UserHandler) GetByEmail(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.GetByEmail(ctx, c.QueryParam("email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetRole(c echo.Context) error {
	ctx := c.Request().Context()

	role, err := h.userService.GetRole(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.RoleResponse{Role: role})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	modified, err := h.userService.UpdateProfile(ctx, c.QueryParam("email"), req.DisplayName, req.PhotoURL)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.ModifyResult{
		MatchedCount:  modified,
		ModifiedCount: modified,
	})
}
