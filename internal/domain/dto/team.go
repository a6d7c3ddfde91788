package dto

// CreateTeamRequest carries the fields required to create a team.
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Admin       int64  `json:"admin" validate:"required"`
}

// TeamUpdate is the fixed set of optional fields accepted by a team
// update; at least one must be supplied.
type TeamUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Admin       *int64  `json:"admin,omitempty"`
}

// Empty reports whether no field is supplied.
func (u TeamUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Admin == nil
}

// UpdateTeamRequest wraps the update fields under the "team" key.
type UpdateTeamRequest struct {
	Team *TeamUpdate `json:"team" validate:"required"`
}

// TeamMembersRequest lists the user IDs for a membership add or remove.
// An empty list is a valid no-op; only a missing "users" key is rejected,
// which the handler detects as a nil slice.
type TeamMembersRequest struct {
	Users []int64 `json:"users"`
}

// TeamSummary is one entry of the team listing and the describe-team
// response.
type TeamSummary struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
	Admin        int64  `json:"admin"`
}

// TeamMembership is one entry of a user's team listing.
type TeamMembership struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
}

// MemberSummary is one entry of a team's member listing, ordered by name.
type MemberSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}
