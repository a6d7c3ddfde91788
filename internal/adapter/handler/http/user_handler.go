package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	logger *zap.Logger
	users  *usecase.UserService
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(logger *zap.Logger, users *usecase.UserService) *UserHandler {
	return &UserHandler{logger: logger, users: users}
}

// Create handles POST /users
func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	id, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return writeID(c, id)
}

// List handles GET /users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Describe handles GET /users/:id
func (h *UserHandler) Describe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	user, err := h.users.Describe(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req dto.UpdateUserRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.users.Update(c.Request().Context(), id, *req.User); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}

// Teams handles GET /users/:id/teams
func (h *UserHandler) Teams(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	teams, err := h.users.Teams(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, teams)
}
