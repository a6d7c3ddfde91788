package model

import "database/sql/driver"

// BoardStatus represents the lifecycle state of a board
type BoardStatus string

const (
	BoardStatusOpen   BoardStatus = "OPEN"
	BoardStatusClosed BoardStatus = "CLOSED"
)

// Scan implements sql.Scanner interface
func (s *BoardStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = BoardStatus(v)
	case []byte:
		*s = BoardStatus(v)
	default:
		*s = BoardStatusOpen
	}
	return nil
}

// Value implements driver.Valuer interface
func (s BoardStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Board is a container of tasks scoped to one team. The name is unique
// within the team. EndTime stays nil until the board is closed; a closed
// board never reopens.
type Board struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"size:64;not null;uniqueIndex:idx_boards_team_name" json:"name"`
	Description  string      `gorm:"size:128" json:"description"`
	TeamID       int64       `gorm:"not null;uniqueIndex:idx_boards_team_name" json:"team_id"`
	Status       BoardStatus `gorm:"size:16;not null;default:'OPEN'" json:"status"`
	CreationTime string      `gorm:"not null" json:"creation_time"`
	EndTime      *string     `json:"end_time,omitempty"`
}

// TableName specifies the table name for GORM
func (Board) TableName() string {
	return "boards"
}
