package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

type taskRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB, logger *zap.Logger) domainRepo.TaskRepository {
	return &taskRepository{db: db, logger: logger}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("Failed to create task",
				zap.String("title", task.Title),
				zap.Int64("board_id", task.BoardID),
				zap.Error(err))
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check task existence: %w", err)
	}
	return count > 0, nil
}

func (r *taskRepository) CountIncomplete(ctx context.Context, boardID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("board_id = ? AND status <> ?", boardID, model.TaskStatusComplete).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count incomplete tasks: %w", err)
	}
	return count, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		r.logger.Error("Failed to update task status",
			zap.Int64("id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

func (r *taskRepository) ListForExport(ctx context.Context, boardID int64) ([]dto.ExportTask, error) {
	var tasks []dto.ExportTask
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("tasks.title", "tasks.description", "tasks.status", "tasks.creation_time", "users.name AS assignee_name").
		Joins("INNER JOIN users ON users.id = tasks.user_id").
		Where("tasks.board_id = ?", boardID).
		Order("tasks.creation_time").
		Scan(&tasks).Error
	if err != nil {
		r.logger.Error("Failed to list tasks for export", zap.Int64("board_id", boardID), zap.Error(err))
		return nil, fmt.Errorf("failed to list tasks for export: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListByBoard(ctx context.Context, boardID int64) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("creation_time").
		Find(&tasks).Error
	if err != nil {
		r.logger.Error("Failed to list tasks", zap.Int64("board_id", boardID), zap.Error(err))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
