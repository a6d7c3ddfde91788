package model

// MaxTeamSize caps the number of members a team can hold, admin included.
const MaxTeamSize = 50

// Team represents a named group of users with exactly one admin. The admin
// is inserted as a member in the same transaction that creates the team.
type Team struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description  string `gorm:"size:128" json:"description"`
	AdminID      int64  `gorm:"not null" json:"admin_id"`
	CreationTime string `gorm:"not null" json:"creation_time"`
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "teams"
}

// TeamMember is one membership row; a user appears at most once per team.
type TeamMember struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID int64 `gorm:"not null;uniqueIndex:idx_team_members_team_user" json:"team_id"`
	UserID int64 `gorm:"not null;uniqueIndex:idx_team_members_team_user" json:"user_id"`
}

// TableName specifies the table name for GORM
func (TeamMember) TableName() string {
	return "team_members"
}
