package dto

// CreateUserRequest carries the fields required to create a user.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
}

// UserUpdate is the fixed set of fields accepted by a user update. Name is
// present only so a supplied value can be rejected: the user name is
// immutable after creation.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

// UpdateUserRequest wraps the update fields under the "user" key.
type UpdateUserRequest struct {
	User *UserUpdate `json:"user" validate:"required"`
}

// UserSummary is one entry of the user listing.
type UserSummary struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// UserDetail is the describe-user response; the display name is reported
// under the "description" key.
type UserDetail struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
}
