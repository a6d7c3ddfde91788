package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/planhub/planner/internal/domain/dto"
	apperrors "github.com/planhub/planner/internal/domain/errors"
	"github.com/planhub/planner/internal/usecase"
)

// TeamHandler handles team-related HTTP requests
type TeamHandler struct {
	logger *zap.Logger
	teams  *usecase.TeamService
}

// NewTeamHandler creates a new team handler instance
func NewTeamHandler(logger *zap.Logger, teams *usecase.TeamService) *TeamHandler {
	return &TeamHandler{logger: logger, teams: teams}
}

// Create handles POST /teams
func (h *TeamHandler) Create(c echo.Context) error {
	var req dto.CreateTeamRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	id, err := h.teams.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return writeID(c, id)
}

// List handles GET /teams
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teams.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, teams)
}

// Describe handles GET /teams/:id
func (h *TeamHandler) Describe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	team, err := h.teams.Describe(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, team)
}

// Update handles PUT /teams/:id
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req dto.UpdateTeamRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.teams.Update(c.Request().Context(), id, *req.Team); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}

// AddMembers handles POST /teams/:id/users
func (h *TeamHandler) AddMembers(c echo.Context) error {
	teamID, userIDs, err := h.membersRequest(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.teams.AddMembers(c.Request().Context(), teamID, userIDs); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}

// RemoveMembers handles DELETE /teams/:id/users
func (h *TeamHandler) RemoveMembers(c echo.Context) error {
	teamID, userIDs, err := h.membersRequest(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.teams.RemoveMembers(c.Request().Context(), teamID, userIDs); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}

// ListMembers handles GET /teams/:id/users
func (h *TeamHandler) ListMembers(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	members, err := h.teams.ListMembers(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *TeamHandler) membersRequest(c echo.Context) (int64, []int64, error) {
	teamID, err := pathID(c, "id")
	if err != nil {
		return 0, nil, err
	}

	var req dto.TeamMembersRequest
	if err := bindRequest(c, &req); err != nil {
		return 0, nil, err
	}
	// An empty list is a valid no-op, but the key itself must be present.
	if req.Users == nil {
		return 0, nil, apperrors.Validationf("Missing required fields: users")
	}
	return teamID, req.Users, nil
}
