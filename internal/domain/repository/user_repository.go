package repository

import (
	"context"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/domain/model"
)

// UserRepository defines storage access for users.
type UserRepository interface {
	// Create inserts the user and fills in its assigned ID.
	Create(ctx context.Context, user *model.User) error

	// GetByID returns the user, or nil when no such row exists.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns all users ordered by creation time ascending.
	List(ctx context.Context) ([]model.User, error)

	// UpdateDisplayName changes the only mutable user field.
	UpdateDisplayName(ctx context.Context, id int64, displayName string) error

	// TeamsForUser returns every team the user administers or belongs to,
	// deduplicated and ordered by team creation time.
	TeamsForUser(ctx context.Context, id int64) ([]dto.TeamMembership, error)
}
