// Package server initializes and runs the todolist backend. It wires the
// repository manager (which migrates the schema on boot), the account and
// task services, and the HTTP server, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/SinaFr/todolist-backend/internal/logging"
	"github.com/SinaFr/todolist-backend/internal/server/accounts"
	"github.com/SinaFr/todolist-backend/internal/server/api"
	"github.com/SinaFr/todolist-backend/internal/server/config"
	"github.com/SinaFr/todolist-backend/internal/server/shared/db"
	"github.com/SinaFr/todolist-backend/internal/server/tasks"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	repos      db.RepositoryManager
	httpServer *api.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefaultLogger()

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	accountService := accounts.NewService(rm.Accounts())
	taskService := tasks.NewService(rm.Tasks(), rm.Accounts())

	httpServer := api.NewServer(c, logger, accountService, taskService)

	return &App{config: c, logger: logger, repos: rm, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
