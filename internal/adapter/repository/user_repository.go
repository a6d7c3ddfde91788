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

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) domainRepo.UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("Failed to create user",
				zap.String("name", user.Name),
				zap.Error(err))
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("creation_time").Find(&users).Error
	if err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) UpdateDisplayName(ctx context.Context, id int64, displayName string) error {
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("display_name", displayName).Error
	if err != nil {
		r.logger.Error("Failed to update user", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) TeamsForUser(ctx context.Context, id int64) ([]dto.TeamMembership, error) {
	var teams []dto.TeamMembership
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Distinct("teams.name", "teams.description", "teams.creation_time").
		Joins("LEFT JOIN team_members ON team_members.team_id = teams.id").
		Where("teams.admin_id = ? OR team_members.user_id = ?", id, id).
		Order("teams.creation_time").
		Scan(&teams).Error
	if err != nil {
		r.logger.Error("Failed to list teams for user", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to list teams for user: %w", err)
	}
	return teams, nil
}
