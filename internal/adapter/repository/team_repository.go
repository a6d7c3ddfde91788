package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

type teamRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, logger *zap.Logger) domainRepo.TeamRepository {
	return &teamRepository{db: db, logger: logger}
}

func (r *teamRepository) CreateWithAdmin(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		member := model.TeamMember{TeamID: team.ID, UserID: team.AdminID}
		return tx.Create(&member).Error
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("Failed to create team",
				zap.String("name", team.Name),
				zap.Error(err))
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get team", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("creation_time").Find(&teams).Error
	if err != nil {
		r.logger.Error("Failed to list teams", zap.Error(err))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, id int64, update dto.TeamUpdate) error {
	// The update iterates a fixed, known field set; absent fields are
	// left untouched.
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Admin != nil {
		updates["admin_id"] = *update.Admin
	}

	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("Failed to update team", zap.Int64("id", id), zap.Error(err))
		}
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (r *teamRepository) CountMembers(ctx context.Context, teamID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}

func (r *teamRepository) AddMembers(ctx context.Context, teamID int64, userIDs []int64) error {
	members := make([]model.TeamMember, 0, len(userIDs))
	for _, userID := range userIDs {
		members = append(members, model.TeamMember{TeamID: teamID, UserID: userID})
	}

	// Users already present in the team are skipped silently.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&members).Error
	if err != nil {
		r.logger.Error("Failed to add team members",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return fmt.Errorf("failed to add team members: %w", err)
	}
	return nil
}

func (r *teamRepository) RemoveMembers(ctx context.Context, teamID int64, userIDs []int64) error {
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id IN ?", teamID, userIDs).
		Delete(&model.TeamMember{}).Error
	if err != nil {
		r.logger.Error("Failed to remove team members",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return fmt.Errorf("failed to remove team members: %w", err)
	}
	return nil
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int64) ([]dto.MemberSummary, error) {
	var members []dto.MemberSummary
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.id", "users.name", "users.display_name").
		Joins("INNER JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id = ?", teamID).
		Order("users.name").
		Scan(&members).Error
	if err != nil {
		r.logger.Error("Failed to list team members",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}
