package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planhub/planner/internal/domain/model"
)

// Migrate idempotently ensures the five tables and their unique indexes
// exist. Safe to run on every startup.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.Board{},
		&model.Task{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
