// Package server wires the list engine to its database and transports and
// runs them until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/listbot/internal/alert"
	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/directory"
	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/dmitrijs2005/listbot/internal/repositories/repomanager"
	"github.com/dmitrijs2005/listbot/internal/server/config"
	"github.com/dmitrijs2005/listbot/internal/server/httpapi"
	"github.com/dmitrijs2005/listbot/internal/store"
	"github.com/sourcegraph/conc/pool"

	gs "github.com/dmitrijs2005/listbot/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	engine  *engine.Engine
	closers []io.Closer
}

// NewApp opens the database, applies migrations and loads every list.
// Integrity failures found while loading disable the affected owners and
// are reported once through the alert log; any other failure is fatal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	app := &App{config: c}

	logOut := logging.NewWriter(logging.FileOptions{Path: c.LogFile})
	app.closers = append(app.closers, logOut)
	app.logger = logging.NewJSONLogger(logOut, c.LogLevel)

	alertLogger := app.logger
	if c.AlertLogFile != "" {
		alertOut := logging.NewWriter(logging.FileOptions{Path: c.AlertLogFile})
		app.closers = append(app.closers, alertOut)
		alertLogger = logging.NewJSONLogger(alertOut, "info")
	}
	notifier := alert.NewLogNotifier(alertLogger)

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		app.Close()
		return nil, err
	}

	db, err := repomanager.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	ping := dbx.PingOptions{Attempts: c.DBRetryAttempts, Delay: c.DBRetryDelay}
	if err := dbx.Ping(ctx, db, ping); err != nil {
		app.Close()
		return nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	st := store.NewStore(db, rm, ping)
	dir := directory.New(st, c.ReservedListID, app.logger)

	if err := dir.Load(ctx, st); err != nil {
		if !common.IsLoadError(err) {
			app.Close()
			return nil, err
		}
		id := notifier.NotifyStartup(ctx, err)
		app.logger.Warn(ctx, "some owners are read-only", "incident", id)
	}

	app.engine = engine.New(dir, st, notifier, app.logger)

	return app, nil
}

// Engine exposes the loaded engine to in-process callers such as the REPL.
func (app *App) Engine() *engine.Engine {
	return app.engine
}

// Run serves the webhook and the gRPC Lists and health services until ctx is cancelled or
// the process receives SIGINT, SIGTERM or SIGQUIT. A server that fails to
// start stops the other one.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...")

	httpServer := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.engine, app.config.SecretKey)
	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.engine, app.config.SecretKey)
	grpcServer.SetServing(true)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(httpServer.Run)
	p.Go(grpcServer.Run)

	err := p.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}

// Close releases the database and the log files. It is safe to call more
// than once.
func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
	for _, c := range app.closers {
		_ = c.Close()
	}
	app.closers = nil
}
