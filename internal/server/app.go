// Package server wires the presale backend together: it opens the database,
// applies migrations, builds the services and runs the REST endpoint until a
// stop signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/presale/internal/logging"
	"github.com/dmitrijs2005/presale/internal/server/config"
	"github.com/dmitrijs2005/presale/internal/server/httpapi"
	"github.com/dmitrijs2005/presale/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/presale/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

// openDB is a seam for tests.
var openDB = repomanager.OpenDB

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "access tokens are signed with the default secret key; set SECRET_KEY")
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	ps := services.NewPurchaseService(db, rm)
	ds := services.NewDashboardService(db, rm)

	srv := httpapi.NewServer(c.Address, logger, us, ps, ds, c.ShutdownTimeout)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
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

// Run serves until ctx is cancelled or a stop signal arrives, then closes the
// database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "closing database", "error", cerr.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
