package dto

// CreateBoardRequest carries the fields required to create a board. A
// caller-supplied creation time overrides the clock so imported data can
// keep its historical timestamp.
type CreateBoardRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time,omitempty"`
}

// BoardSummary is one entry of the open-board listing for a team.
type BoardSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExportResult names the file an export was written to.
type ExportResult struct {
	OutFile string `json:"out_file"`
}
