package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/planhub/planner/internal/clock"
	"github.com/planhub/planner/internal/domain/dto"
	apperrors "github.com/planhub/planner/internal/domain/errors"
	"github.com/planhub/planner/internal/domain/model"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

// ExportService renders board exports to text files
type ExportService struct {
	boards domainRepo.BoardRepository
	tasks  domainRepo.TaskRepository
	teams  domainRepo.TeamRepository
	outDir string
	logger *zap.Logger
	now    clock.Clock
}

// NewExportService creates a new export service instance writing files
// under outDir.
func NewExportService(
	boards domainRepo.BoardRepository,
	tasks domainRepo.TaskRepository,
	teams domainRepo.TeamRepository,
	outDir string,
	logger *zap.Logger,
	now clock.Clock,
) *ExportService {
	return &ExportService{
		boards: boards,
		tasks:  tasks,
		teams:  teams,
		outDir: outDir,
		logger: logger,
		now:    now,
	}
}

// ExportBoard writes a deterministic plain-text report of the board and
// its tasks (in creation order) to the output directory and returns the
// generated filename.
func (s *ExportService) ExportBoard(ctx context.Context, id int64) (*dto.ExportResult, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error exporting board")
	}
	if board == nil {
		return nil, apperrors.Validationf("Board not found")
	}

	team, err := s.teams.GetByID(ctx, board.TeamID)
	if err != nil {
		return nil, apperrors.Storage(err, "Error exporting board")
	}
	teamName := ""
	if team != nil {
		teamName = team.Name
	}

	tasks, err := s.tasks.ListForExport(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "Error exporting board")
	}

	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return nil, apperrors.Storage(err, "Error exporting board")
	}

	filename := fmt.Sprintf("board_%d_%s.txt", id, sanitizeBoardName(board.Name))
	content := renderBoardExport(board, teamName, tasks, s.now())
	if err := os.WriteFile(filepath.Join(s.outDir, filename), []byte(content), 0o644); err != nil {
		return nil, apperrors.Storage(err, "Error exporting board")
	}

	s.logger.Info("Exported board",
		zap.Int64("id", id),
		zap.String("file", filename),
		zap.Int("tasks", len(tasks)))
	return &dto.ExportResult{OutFile: filename}, nil
}

// sanitizeBoardName keeps alphanumerics, spaces, hyphens and underscores,
// drops trailing whitespace, then replaces spaces with underscores.
func sanitizeBoardName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	return strings.ReplaceAll(safe, " ", "_")
}

func renderBoardExport(board *model.Board, teamName string, tasks []dto.ExportTask, generatedAt string) string {
	heavy := strings.Repeat("=", 60)
	light := strings.Repeat("-", 40)

	lines := []string{
		heavy,
		fmt.Sprintf("BOARD EXPORT: %s", board.Name),
		heavy,
		fmt.Sprintf("Team: %s", teamName),
		fmt.Sprintf("Description: %s", orNoDescription(board.Description)),
		fmt.Sprintf("Status: %s", board.Status),
		fmt.Sprintf("Created: %s", board.CreationTime),
		"",
	}

	if len(tasks) > 0 {
		lines = append(lines, "TASKS:", light)
		for i, task := range tasks {
			lines = append(lines,
				fmt.Sprintf("%d. %s", i+1, task.Title),
				fmt.Sprintf("   Status: %s", task.Status),
				fmt.Sprintf("   Assigned to: %s", task.AssigneeName),
				fmt.Sprintf("   Description: %s", orNoDescription(task.Description)),
				fmt.Sprintf("   Created: %s", task.CreationTime),
				"",
			)
		}
	} else {
		lines = append(lines, "No tasks in this board.")
	}

	lines = append(lines, heavy, fmt.Sprintf("Export generated on: %s", generatedAt))
	return strings.Join(lines, "\n")
}

func orNoDescription(description string) string {
	if description == "" {
		return "No description"
	}
	return description
}
