package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

type boardRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB, logger *zap.Logger) domainRepo.BoardRepository {
	return &boardRepository{db: db, logger: logger}
}

func (r *boardRepository) Create(ctx context.Context, board *model.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("Failed to create board",
				zap.String("name", board.Name),
				zap.Int64("team_id", board.TeamID),
				zap.Error(err))
		}
		return fmt.Errorf("failed to create board: %w", err)
	}
	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).First(&board, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get board", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return &board, nil
}

func (r *boardRepository) ListOpenByTeam(ctx context.Context, teamID int64) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, model.BoardStatusOpen).
		Order("creation_time").
		Find(&boards).Error
	if err != nil {
		r.logger.Error("Failed to list boards", zap.Int64("team_id", teamID), zap.Error(err))
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

func (r *boardRepository) Close(ctx context.Context, id int64, endTime string) error {
	err := r.db.WithContext(ctx).
		Model(&model.Board{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   model.BoardStatusClosed,
			"end_time": endTime,
		}).Error
	if err != nil {
		r.logger.Error("Failed to close board", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to close board: %w", err)
	}
	return nil
}
