package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/usecase"
)

// BoardHandler handles board and task HTTP requests
type BoardHandler struct {
	logger  *zap.Logger
	boards  *usecase.BoardService
	exports *usecase.ExportService
}

// NewBoardHandler creates a new board handler instance
func NewBoardHandler(logger *zap.Logger, boards *usecase.BoardService, exports *usecase.ExportService) *BoardHandler {
	return &BoardHandler{logger: logger, boards: boards, exports: exports}
}

// Create handles POST /teams/:id/boards
func (h *BoardHandler) Create(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req dto.CreateBoardRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	id, err := h.boards.CreateBoard(c.Request().Context(), teamID, req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return writeID(c, id)
}

// List handles GET /teams/:id/boards
func (h *BoardHandler) List(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	boards, err := h.boards.ListBoards(c.Request().Context(), teamID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, boards)
}

// Close handles PUT /boards/:id/close
func (h *BoardHandler) Close(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	if err := h.boards.CloseBoard(c.Request().Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}
	return writeSuccess(c)
}

// AddTask handles POST /boards/:id/tasks
func (h *BoardHandler) AddTask(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req dto.AddTaskRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, h.logger, err)
	}

	id, err := h.boards.AddTask(c.Request().Context(), boardID, req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return writeID(c, id)
}

// Export handles POST /boards/:id/export
func (h *BoardHandler) Export(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	result, err := h.exports.ExportBoard(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}
