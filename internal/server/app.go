// Package server initializes and runs the profile-sync server. It opens the
// configured database backend, runs migrations, handles graceful shutdown,
// and starts the HTTP API.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/trattoria/internal/logging"
	"github.com/dmitrijs2005/trattoria/internal/server/config"
	serverhttp "github.com/dmitrijs2005/trattoria/internal/server/http"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/repomanager"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *http.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	mgr, err := repomanager.New(c.DatabaseType)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverFor(c.DatabaseType), c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := mgr.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	router := serverhttp.NewRouter(serverhttp.NewHandler(db, mgr, logger), logger)

	srv := &http.Server{
		Addr:    c.EndpointAddr,
		Handler: router,
	}

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func driverFor(databaseType string) string {
	if databaseType == config.DatabasePostgres {
		return "pgx"
	}
	return "sqlite"
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr, "db", app.config.DatabaseType)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err.Error())
	}

	app.logger.Info(shutdownCtx, "Server stopped")
}
