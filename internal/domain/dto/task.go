package dto

// AddTaskRequest carries the fields required to add a task to a board.
// Like boards, the creation time may be supplied for backfilled data.
type AddTaskRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	UserID       int64  `json:"user_id" validate:"required"`
	CreationTime string `json:"creation_time,omitempty"`
}

// UpdateTaskStatusRequest carries the new status for a task.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ExportTask is one task row of a board export, with the assignee name
// resolved.
type ExportTask struct {
	Title        string
	Description  string
	Status       string
	CreationTime string
	AssigneeName string
}
