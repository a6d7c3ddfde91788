package model

import "database/sql/driver"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusComplete   TaskStatus = "COMPLETE"
)

// TaskStatuses lists the accepted status values in declaration order.
var TaskStatuses = []TaskStatus{TaskStatusOpen, TaskStatusInProgress, TaskStatusComplete}

// IsValid reports whether s is one of the three enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusComplete:
		return true
	}
	return false
}

// Scan implements sql.Scanner interface
func (s *TaskStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = TaskStatus(v)
	case []byte:
		*s = TaskStatus(v)
	default:
		*s = TaskStatusOpen
	}
	return nil
}

// Value implements driver.Valuer interface
func (s TaskStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Task is a titled unit of work assigned to one user within one board.
// The title is unique within the board. All status transitions between the
// three values are permitted.
type Task struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"size:64;not null;uniqueIndex:idx_tasks_board_title" json:"title"`
	Description  string     `gorm:"size:128" json:"description"`
	BoardID      int64      `gorm:"not null;uniqueIndex:idx_tasks_board_title" json:"board_id"`
	UserID       int64      `gorm:"not null" json:"user_id"`
	Status       TaskStatus `gorm:"size:16;not null;default:'OPEN'" json:"status"`
	CreationTime string     `gorm:"not null" json:"creation_time"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}
