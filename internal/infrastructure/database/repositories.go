package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/adapter/repository"
	domainRepo "github.com/planhub/planner/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	User  domainRepo.UserRepository
	Team  domainRepo.TeamRepository
	Board domainRepo.BoardRepository
	Task  domainRepo.TaskRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:  repository.NewUserRepository(db, logger),
		Team:  repository.NewTeamRepository(db, logger),
		Board: repository.NewBoardRepository(db, logger),
		Task:  repository.NewTaskRepository(db, logger),
	}
}
