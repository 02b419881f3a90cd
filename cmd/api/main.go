// Package main contains the entrypoint for the intake API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hafizn/kirimbot/internal/api"
	"github.com/hafizn/kirimbot/internal/config"
	"github.com/hafizn/kirimbot/internal/database"
	"github.com/hafizn/kirimbot/internal/logger"
	"github.com/hafizn/kirimbot/internal/tasks"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all server components, blocks until shutdown, and
// returns the process exit code.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	db, err := database.NewDB(cfg.Database.DSN(),
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)
	if err != nil {
		log.Error("Failed to connect to database", "host", cfg.Database.Host, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	e := api.NewServer(log, store)

	sched, err := tasks.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger: log,
		Store:  store,
	}))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting intake API server", "addr", cfg.Server.ListenAddr)
		if err := e.Start(cfg.Server.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := sched.Start(); err != nil {
			return err
		}

		<-gCtx.Done()
		return sched.Stop()
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutdown signal received, stopping server...")
		return api.Shutdown(e, shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server stopped due to error", "error", err)
		return 1
	}

	log.Info("Server stopped gracefully.")
	return 0
}
