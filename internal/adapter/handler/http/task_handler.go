package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/usecase"
)

// TaskHandler handles task status HTTP requests
type TaskHandler struct {
	logger *zap.Logger
	boards *usecase.BoardService
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(logger *zap.Logger, boards *usecase.BoardService) *TaskHandler {
	return &TaskHandler{logger: logger, boards: boards}
}

// UpdateStatus handles PUT /tasks/:id/status
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req dto.UpdateTaskStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.boards.UpdateTaskStatus(c.Request().Context(), id, req.Status); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}
