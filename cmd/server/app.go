package main

import (
	"fmt"
	"log/slog"

	"github.com/tasktrackhq/tasktrack/internal/config"
	"github.com/tasktrackhq/tasktrack/internal/platform/postgres"
	"github.com/tasktrackhq/tasktrack/internal/platform/sqlite"
	"github.com/tasktrackhq/tasktrack/internal/service"
	"github.com/tasktrackhq/tasktrack/internal/store"
)

// application holds the shared dependencies of the server: configuration,
// logging, the storage layer and the services built on top of it.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	taskStore   store.TaskStore
	taskService service.TaskService

	// closeStore releases the storage backend on shutdown.
	closeStore func() error
}

// newApplication wires the application together for the configured
// database driver.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Database.Driver {
	case "postgres":
		db, err := setupDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
		app.closeStore = db.Close

	case "sqlite":
		s, err := sqlite.Open(cfg.Database.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		app.taskStore = s
		app.closeStore = s.Close

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	taskService, err := service.NewTaskService(app.taskStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	app.taskService = taskService

	return app, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.closeStore != nil {
		if err := app.closeStore(); err != nil {
			app.logger.Error("failed to close store", "error", err)
		}
	}
}
