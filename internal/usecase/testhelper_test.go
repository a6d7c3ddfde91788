package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/planhub/planner/internal/clock"
	"github.com/planhub/planner/internal/config"
	"github.com/planhub/planner/internal/domain/dto"
	"github.com/planhub/planner/internal/infrastructure/database"
	"github.com/planhub/planner/internal/usecase"
)

// testClock returns timestamps that advance by one second per call, so
// creation-time ordering is deterministic in tests.
func testClock() clock.Clock {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("2024-01-15T10:%02d:%02d.000000Z", n/60, n%60)
	}
}

type testEnv struct {
	repos   *database.Repositories
	users   *usecase.UserService
	teams   *usecase.TeamService
	boards  *usecase.BoardService
	exports *usecase.ExportService
	outDir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	cfg := config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	db, err := database.NewConnection(&cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db, logger)
	})
	require.NoError(t, database.Migrate(db, logger))

	repos := database.NewRepositories(db, logger)
	outDir := t.TempDir()
	return &testEnv{
		repos:   repos,
		users:   usecase.NewUserService(repos.User, logger, testClock()),
		teams:   usecase.NewTeamService(repos.Team, repos.User, logger, testClock()),
		boards:  usecase.NewBoardService(repos.Board, repos.Task, repos.Team, repos.User, logger, testClock()),
		exports: usecase.NewExportService(repos.Board, repos.Task, repos.Team, outDir, logger, testClock()),
		outDir:  outDir,
	}
}

func (e *testEnv) createUser(t *testing.T, name, displayName string) int64 {
	t.Helper()
	id, err := e.users.Create(context.Background(), dto.CreateUserRequest{
		Name:        name,
		DisplayName: displayName,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) createTeam(t *testing.T, name, description string, adminID int64) int64 {
	t.Helper()
	id, err := e.teams.Create(context.Background(), dto.CreateTeamRequest{
		Name:        name,
		Description: description,
		Admin:       adminID,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) createBoard(t *testing.T, teamID int64, name, description string) int64 {
	t.Helper()
	id, err := e.boards.CreateBoard(context.Background(), teamID, dto.CreateBoardRequest{
		Name:        name,
		Description: description,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) addTask(t *testing.T, boardID int64, title string, userID int64) int64 {
	t.Helper()
	id, err := e.boards.AddTask(context.Background(), boardID, dto.AddTaskRequest{
		Title:       title,
		Description: "task description",
		UserID:      userID,
	})
	require.NoError(t, err)
	return id
}
