package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/clock"
	"github.com/planhub/planner/internal/domain/dto"
	apperrors "github.com/planhub/planner/internal/domain/errors"
	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

// TeamService handles team management business logic
type TeamService struct {
	teams  domainRepo.TeamRepository
	users  domainRepo.UserRepository
	logger *zap.Logger
	now    clock.Clock
}

// NewTeamService creates a new team service instance
func NewTeamService(teams domainRepo.TeamRepository, users domainRepo.UserRepository, logger *zap.Logger, now clock.Clock) *TeamService {
	return &TeamService{
		teams:  teams,
		users:  users,
		logger: logger,
		now:    now,
	}
}

// Create registers a new team and returns its assigned ID. The admin is
// added as a member in the same transaction as the team row.
func (s *TeamService) Create(ctx context.Context, req dto.CreateTeamRequest) (int64, error) {
	name, err := requiredText("Name", req.Name, 64)
	if err != nil {
		return 0, err
	}
	description, err := optionalText("Description", req.Description, 128)
	if err != nil {
		return 0, err
	}

	adminExists, err := s.users.Exists(ctx, req.Admin)
	if err != nil {
		return 0, apperrors.Storage(err, "Error creating team")
	}
	if !adminExists {
		return 0, apperrors.Validationf("Admin user not found")
	}

	team := model.Team{
		Name:         name,
		Description:  description,
		AdminID:      req.Admin,
		CreationTime: s.now(),
	}
	if err := s.teams.CreateWithAdmin(ctx, &team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Validationf("Team name must be unique")
		}
		return 0, apperrors.Storage(err, "Error creating team")
	}

	s.logger.Info("Created team",
		zap.Int64("id", team.ID),
		zap.String("name", team.Name),
		zap.Int64("admin_id", team.AdminID))
	return team.ID, nil
}

// List returns all teams ordered by creation time.
func (s *TeamService) List(ctx context.Context) ([]dto.TeamSummary, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing teams")
	}

	summaries := make([]dto.TeamSummary, 0, len(teams))
	for _, t := range teams {
		summaries = append(summaries, dto.TeamSummary{
			Name:         t.Name,
			Description:  t.Description,
			CreationTime: t.CreationTime,
			Admin:        t.AdminID,
		})
	}
	return summaries, nil
}

// Describe returns the details of one team.
func (s *TeamService) Describe(ctx context.Context, id int64) (*dto.TeamSummary, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error describing team")
	}
	if team == nil {
		return nil, apperrors.Validationf("Team not found")
	}

	return &dto.TeamSummary{
		Name:         team.Name,
		Description:  team.Description,
		CreationTime: team.CreationTime,
		Admin:        team.AdminID,
	}, nil
}

// Update applies the supplied fields; at least one must be present. A new
// admin must reference an existing user.
func (s *TeamService) Update(ctx context.Context, id int64, update dto.TeamUpdate) error {
	if update.Empty() {
		return apperrors.Validationf("No valid fields to update")
	}
	if update.Name != nil {
		name, err := requiredText("Name", *update.Name, 64)
		if err != nil {
			return err
		}
		update.Name = &name
	}
	if update.Description != nil {
		description, err := optionalText("Description", *update.Description, 128)
		if err != nil {
			return err
		}
		update.Description = &description
	}

	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return apperrors.Storage(err, "Error updating team")
	}
	if team == nil {
		return apperrors.Validationf("Team not found")
	}

	if update.Admin != nil {
		adminExists, err := s.users.Exists(ctx, *update.Admin)
		if err != nil {
			return apperrors.Storage(err, "Error updating team")
		}
		if !adminExists {
			return apperrors.Validationf("Admin user not found")
		}
	}

	if err := s.teams.Update(ctx, id, update); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Validationf("Team name must be unique")
		}
		return apperrors.Storage(err, "Error updating team")
	}

	s.logger.Info("Updated team", zap.Int64("id", id))
	return nil
}

// AddMembers admits the listed users as team members. Admission is
// all-or-nothing: every ID is checked before any row is written. Users
// already in the team are skipped silently.
func (s *TeamService) AddMembers(ctx context.Context, teamID int64, userIDs []int64) error {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return apperrors.Storage(err, "Error adding users to team")
	}
	if team == nil {
		return apperrors.Validationf("Team not found")
	}

	currentSize, err := s.teams.CountMembers(ctx, teamID)
	if err != nil {
		return apperrors.Storage(err, "Error adding users to team")
	}
	if currentSize+int64(len(userIDs)) > model.MaxTeamSize {
		return apperrors.Validationf("Cannot exceed maximum team size of %d users", model.MaxTeamSize)
	}

	for _, userID := range userIDs {
		exists, err := s.users.Exists(ctx, userID)
		if err != nil {
			return apperrors.Storage(err, "Error adding users to team")
		}
		if !exists {
			return apperrors.Validationf("User %d not found", userID)
		}
	}

	if len(userIDs) == 0 {
		return nil
	}
	if err := s.teams.AddMembers(ctx, teamID, userIDs); err != nil {
		return apperrors.Storage(err, "Error adding users to team")
	}

	s.logger.Info("Added team members",
		zap.Int64("team_id", teamID),
		zap.Int("count", len(userIDs)))
	return nil
}

// RemoveMembers drops the listed users from the team. The admin can never
// be removed; every ID is checked before any row is deleted. Users not in
// the team are skipped silently.
func (s *TeamService) RemoveMembers(ctx context.Context, teamID int64, userIDs []int64) error {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return apperrors.Storage(err, "Error removing users from team")
	}
	if team == nil {
		return apperrors.Validationf("Team not found")
	}

	for _, userID := range userIDs {
		if userID == team.AdminID {
			return apperrors.Validationf("Cannot remove team admin from team")
		}
	}

	if len(userIDs) == 0 {
		return nil
	}
	if err := s.teams.RemoveMembers(ctx, teamID, userIDs); err != nil {
		return apperrors.Storage(err, "Error removing users from team")
	}

	s.logger.Info("Removed team members",
		zap.Int64("team_id", teamID),
		zap.Int("count", len(userIDs)))
	return nil
}

// ListMembers returns the team's members ordered by user name.
func (s *TeamService) ListMembers(ctx context.Context, teamID int64) ([]dto.MemberSummary, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing team users")
	}
	if team == nil {
		return nil, apperrors.Validationf("Team not found")
	}

	members, err := s.teams.ListMembers(ctx, teamID)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing team users")
	}
	return members, nil
}
