package repository

import (
	"context"

	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/domain/model"
)

// TeamRepository defines storage access for teams and their memberships.
type TeamRepository interface {
	// CreateWithAdmin inserts the team row and the admin membership row in
	// one transaction, so a team is never observed without its admin as a
	// member. Fills in the team's assigned ID.
	CreateWithAdmin(ctx context.Context, team *model.Team) error

	// GetByID returns the team, or nil when no such row exists.
	GetByID(ctx context.Context, id int64) (*model.Team, error)

	// List returns all teams ordered by creation time ascending.
	List(ctx context.Context) ([]model.Team, error)

	// Update applies the supplied fields of the fixed optional-field set.
	Update(ctx context.Context, id int64, update dto.TeamUpdate) error

	// CountMembers returns the current membership count of the team.
	CountMembers(ctx context.Context, teamID int64) (int64, error)

	// AddMembers inserts membership rows for the given users; users already
	// present are skipped silently.
	AddMembers(ctx context.Context, teamID int64, userIDs []int64) error

	// RemoveMembers deletes membership rows for the given users; absent
	// users are skipped silently.
	RemoveMembers(ctx context.Context, teamID int64, userIDs []int64) error

	// ListMembers returns the team's members ordered by user name ascending.
	ListMembers(ctx context.Context, teamID int64) ([]dto.MemberSummary, error)
}
