package repository

import (
	"context"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/domain/model"
)

// BoardRepository defines storage access for boards.
type BoardRepository interface {
	// Create inserts the board and fills in its assigned ID.
	Create(ctx context.Context, board *model.Board) error

	// GetByID returns the board, or nil when no such row exists.
	GetByID(ctx context.Context, id int64) (*model.Board, error)

	// ListOpenByTeam returns the team's OPEN boards ordered by creation
	// time ascending.
	ListOpenByTeam(ctx context.Context, teamID int64) ([]model.Board, error)

	// Close marks the board CLOSED and records its end time.
	Close(ctx context.Context, id int64, endTime string) error
}

// TaskRepository defines storage access for tasks.
type TaskRepository interface {
	// Create inserts the task and fills in its assigned ID.
	Create(ctx context.Context, task *model.Task) error

	// Exists reports whether a task with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// CountIncomplete returns the number of the board's tasks whose status
	// is not COMPLETE.
	CountIncomplete(ctx context.Context, boardID int64) (int64, error)

	// UpdateStatus sets the task's status.
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) error

	// ListByBoard returns the board's tasks ordered by creation time
	// ascending.
	ListByBoard(ctx context.Context, boardID int64) ([]model.Task, error)

	// ListForExport returns the board's tasks with assignee names
	// resolved, ordered by creation time ascending.
	ListForExport(ctx context.Context, boardID int64) ([]dto.ExportTask, error)
}
