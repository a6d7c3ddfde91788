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

// UserService handles user management business logic
type UserService struct {
	users  domainRepo.UserRepository
	logger *zap.Logger
	now    clock.Clock
}

// NewUserService creates a new user service instance
func NewUserService(users domainRepo.UserRepository, logger *zap.Logger, now clock.Clock) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
		now:    now,
	}
}

// Create registers a new user and returns its assigned ID.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (int64, error) {
	name, err := requiredText("Name", req.Name, 64)
	if err != nil {
		return 0, err
	}
	displayName, err := requiredText("Display name", req.DisplayName, 64)
	if err != nil {
		return 0, err
	}

	user := model.User{
		Name:         name,
		DisplayName:  displayName,
		CreationTime: s.now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Validationf("User name must be unique")
		}
		return 0, apperrors.Storage(err, "Error creating user")
	}

	s.logger.Info("Created user",
		zap.Int64("id", user.ID),
		zap.String("name", user.Name))
	return user.ID, nil
}

// List returns all users ordered by creation time.
func (s *UserService) List(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "Error listing users")
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.UserSummary{
			Name:         u.Name,
			DisplayName:  u.DisplayName,
			CreationTime: u.CreationTime,
		})
	}
	return summaries, nil
}

// Describe returns the details of one user. The display name is reported
// under the "description" key.
func (s *UserService) Describe(ctx context.Context, id int64) (*dto.UserDetail, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error describing user")
	}
	if user == nil {
		return nil, apperrors.Validationf("User not found")
	}

	return &dto.UserDetail{
		Name:         user.Name,
		Description:  user.DisplayName,
		CreationTime: user.CreationTime,
	}, nil
}

// Update changes a user's display name. The name itself is immutable and
// its presence in the update is rejected. The display name bound is 128
// characters here, wider than the 64 enforced at creation.
func (s *UserService) Update(ctx context.Context, id int64, update dto.UserUpdate) error {
	if update.Name != nil {
		return apperrors.Validationf("User name cannot be updated")
	}
	if update.DisplayName == nil {
		return apperrors.Validationf("Missing required field: display_name in user object")
	}
	displayName, err := requiredText("Display name", *update.DisplayName, 128)
	if err != nil {
		return err
	}

	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return apperrors.Storage(err, "Error updating user")
	}
	if !exists {
		return apperrors.Validationf("User not found")
	}

	if err := s.users.UpdateDisplayName(ctx, id, displayName); err != nil {
		return apperrors.Storage(err, "Error updating user")
	}

	s.logger.Info("Updated user", zap.Int64("id", id))
	return nil
}

// Teams returns every team the user administers or is a member of,
// deduplicated and ordered by team creation time.
func (s *UserService) Teams(ctx context.Context, id int64) ([]dto.TeamMembership, error) {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error getting user teams")
	}
	if !exists {
		return nil, apperrors.Validationf("User not found")
	}

	teams, err := s.users.TeamsForUser(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error getting user teams")
	}
	return teams, nil
}
