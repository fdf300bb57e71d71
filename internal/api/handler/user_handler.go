package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserHandler handles the admin user-management endpoints plus the
// authenticated single-user lookup. All responses are sanitized payloads.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users (admin only). Unlike self-registration
// this path may assign the admin role.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusCreated, sanitize(user))
}

// List handles GET /api/users (admin only).
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]*userPayload, 0, len(users))
	for _, u := range users {
		out = append(out, sanitize(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/users/:id (any authenticated caller).
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, sanitize(user))
}

// Update handles PUT /api/users/:id (admin only).
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, sanitize(user))
}

// Delete handles DELETE /api/users/:id (admin only).
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, sanitize(user))
}

func userError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, domain.ErrEmailRegistered), errors.Is(err, domain.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
	}
	return err
}
