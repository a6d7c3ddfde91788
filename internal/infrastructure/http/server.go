package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/planhub/planner/internal/adapter/handler/http"
	"github.com/planhub/planner/internal/clock"
	"github.com/planhub/planner/internal/config"
	"github.com/planhub/planner/internal/infrastructure/database"
	"github.com/planhub/planner/internal/middleware"
	"github.com/planhub/planner/internal/usecase"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewRequestValidator()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "Team Project Planner API is running",
		})
	})

	// API information
	s.echo.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to Team Project Planner API",
			"version": s.config.Service.Version,
		})
	})

	// Initialize services
	userService := usecase.NewUserService(s.repos.User, s.logger, clock.Now)
	teamService := usecase.NewTeamService(s.repos.Team, s.repos.User, s.logger, clock.Now)
	boardService := usecase.NewBoardService(s.repos.Board, s.repos.Task, s.repos.Team, s.repos.User, s.logger, clock.Now)
	exportService := usecase.NewExportService(s.repos.Board, s.repos.Task, s.repos.Team, s.config.Export.Dir, s.logger, clock.Now)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s.logger, userService)
	teamHandler := handlers.NewTeamHandler(s.logger, teamService)
	boardHandler := handlers.NewBoardHandler(s.logger, boardService, exportService)
	taskHandler := handlers.NewTaskHandler(s.logger, boardService)

	// User routes
	s.echo.POST("/users", userHandler.Create)
	s.echo.GET("/users", userHandler.List)
	s.echo.GET("/users/:id", userHandler.Describe)
	s.echo.PUT("/users/:id", userHandler.Update)
	s.echo.GET("/users/:id/teams", userHandler.Teams)

	// Team routes
	s.echo.POST("/teams", teamHandler.Create)
	s.echo.GET("/teams", teamHandler.List)
	s.echo.GET("/teams/:id", teamHandler.Describe)
	s.echo.PUT("/teams/:id", teamHandler.Update)
	s.echo.POST("/teams/:id/users", teamHandler.AddMembers)
	s.echo.DELETE("/teams/:id/users", teamHandler.RemoveMembers)
	s.echo.GET("/teams/:id/users", teamHandler.ListMembers)

	// Board routes
	s.echo.POST("/teams/:id/boards", boardHandler.Create)
	s.echo.GET("/teams/:id/boards", boardHandler.List)
	s.echo.PUT("/boards/:id/close", boardHandler.Close)
	s.echo.POST("/boards/:id/tasks", boardHandler.AddTask)
	s.echo.POST("/boards/:id/export", boardHandler.Export)

	// Task routes
	s.echo.PUT("/tasks/:id/status", taskHandler.UpdateStatus)
}
