package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/clock"
	"github.com/planhub/planner/internal/domain/dto"
	apperrors "github.com/planhub/planner/internal/domain/errors"
	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

// BoardService handles board and task business logic
type BoardService struct {
	boards domainRepo.BoardRepository
	tasks  domainRepo.TaskRepository
	teams  domainRepo.TeamRepository
	users  domainRepo.UserRepository
	logger *zap.Logger
	now    clock.Clock
}

// NewBoardService creates a new board service instance
func NewBoardService(
	boards domainRepo.BoardRepository,
	tasks domainRepo.TaskRepository,
	teams domainRepo.TeamRepository,
	users domainRepo.UserRepository,
	logger *zap.Logger,
	now clock.Clock,
) *BoardService {
	return &BoardService{
		boards: boards,
		tasks:  tasks,
		teams:  teams,
		users:  users,
		logger: logger,
		now:    now,
	}
}

// CreateBoard opens a new board for a team and returns its assigned ID.
// A caller-supplied creation time is kept as-is so backfilled boards can
// carry a historical timestamp.
func (s *BoardService) CreateBoard(ctx context.Context, teamID int64, req dto.CreateBoardRequest) (int64, error) {
	name, err := requiredText("Board name", req.Name, 64)
	if err != nil {
		return 0, err
	}
	description, err := optionalText("Description", req.Description, 128)
	if err != nil {
		return 0, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return 0, apperrors.Storage(err, "Error creating board")
	}
	if team == nil {
		return 0, apperrors.Validationf("Team not found")
	}

	creationTime := req.CreationTime
	if creationTime == "" {
		creationTime = s.now()
	}

	board := model.Board{
		Name:         name,
		Description:  description,
		TeamID:       teamID,
		Status:       model.BoardStatusOpen,
		CreationTime: creationTime,
	}
	if err := s.boards.Create(ctx, &board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Validationf("Board name must be unique for the team")
		}
		return 0, apperrors.Storage(err, "Error creating board")
	}

	s.logger.Info("Created board",
		zap.Int64("id", board.ID),
		zap.String("name", board.Name),
		zap.Int64("team_id", teamID))
	return board.ID, nil
}

// CloseBoard transitions a board from OPEN to CLOSED and records the end
// time. Closing requires every task on the board to be COMPLETE; a board
// with no tasks closes trivially. A closed board never reopens.
func (s *BoardService) CloseBoard(ctx context.Context, id int64) error {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return apperrors.Storage(err, "Error closing board")
	}
	if board == nil {
		return apperrors.Validationf("Board not found")
	}
	if board.Status == model.BoardStatusClosed {
		return apperrors.Validationf("Board is already closed")
	}

	incomplete, err := s.tasks.CountIncomplete(ctx, id)
	if err != nil {
		return apperrors.Storage(err, "Error closing board")
	}
	if incomplete > 0 {
		return apperrors.Validationf("Cannot close board with incomplete tasks")
	}

	if err := s.boards.Close(ctx, id, s.now()); err != nil {
		return apperrors.Storage(err, "Error closing board")
	}

	s.logger.Info("Closed board", zap.Int64("id", id))
	return nil
}

// ListBoards returns a team's OPEN boards ordered by creation time.
// Closed boards are omitted.
func (s *BoardService) ListBoards(ctx context.Context, teamID int64) ([]dto.BoardSummary, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing boards")
	}
	if team == nil {
		return nil, apperrors.Validationf("Team not found")
	}

	boards, err := s.boards.ListOpenByTeam(ctx, teamID)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing boards")
	}

	summaries := make([]dto.BoardSummary, 0, len(boards))
	for _, b := range boards {
		summaries = append(summaries, dto.BoardSummary{ID: b.ID, Name: b.Name})
	}
	return summaries, nil
}

// AddTask creates a task on an OPEN board and returns its assigned ID.
func (s *BoardService) AddTask(ctx context.Context, boardID int64, req dto.AddTaskRequest) (int64, error) {
	title, err := requiredText("Task title", req.Title, 64)
	if err != nil {
		return 0, err
	}
	description, err := optionalText("Description", req.Description, 128)
	if err != nil {
		return 0, err
	}

	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return 0, apperrors.Storage(err, "Error adding task")
	}
	if board == nil {
		return 0, apperrors.Validationf("Board not found")
	}
	if board.Status != model.BoardStatusOpen {
		return 0, apperrors.Validationf("Can only add tasks to open boards")
	}

	userExists, err := s.users.Exists(ctx, req.UserID)
	if err != nil {
		return 0, apperrors.Storage(err, "Error adding task")
	}
	if !userExists {
		return 0, apperrors.Validationf("User not found")
	}

	creationTime := req.CreationTime
	if creationTime == "" {
		creationTime = s.now()
	}

	task := model.Task{
		Title:        title,
		Description:  description,
		BoardID:      boardID,
		UserID:       req.UserID,
		Status:       model.TaskStatusOpen,
		CreationTime: creationTime,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Validationf("Task title must be unique for the board")
		}
		return 0, apperrors.Storage(err, "Error adding task")
	}

	s.logger.Info("Added task",
		zap.Int64("id", task.ID),
		zap.String("title", task.Title),
		zap.Int64("board_id", boardID))
	return task.ID, nil
}

// UpdateTaskStatus sets a task's status. Any of the three values is
// accepted from any current status; there is no transition table.
func (s *BoardService) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	newStatus := model.TaskStatus(status)
	if !newStatus.IsValid() {
		values := make([]string, 0, len(model.TaskStatuses))
		for _, v := range model.TaskStatuses {
			values = append(values, string(v))
		}
		return apperrors.Validationf("Status must be one of: %s", strings.Join(values, ", "))
	}

	exists, err := s.tasks.Exists(ctx, id)
	if err != nil {
		return apperrors.Storage(err, "Error updating task status")
	}
	if !exists {
		return apperrors.Validationf("Task not found")
	}

	if err := s.tasks.UpdateStatus(ctx, id, newStatus); err != nil {
		return apperrors.Storage(err, "Error updating task status")
	}

	s.logger.Info("Updated task status",
		zap.Int64("id", id),
		zap.String("status", status))
	return nil
}
