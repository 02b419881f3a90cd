// Package main contains the entrypoint for the Telegram intake bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"github.com/hafizn/kirimbot/internal/assist"
	"github.com/hafizn/kirimbot/internal/bot/handlers"
	"github.com/hafizn/kirimbot/internal/config"
	"github.com/hafizn/kirimbot/internal/database"
	"github.com/hafizn/kirimbot/internal/dialogue"
	"github.com/hafizn/kirimbot/internal/intake"
	"github.com/hafizn/kirimbot/internal/logger"
	"github.com/hafizn/kirimbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all bot components, blocks until shutdown, and returns
// the process exit code.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	if cfg.Telegram.Token == "" {
		log.Error("Telegram token is not configured (set KIRIM_TELEGRAM_TOKEN)")
		return 1
	}

	client := intake.NewClient(cfg.Intake.BaseURL, cfg.Intake.Timeout, log)

	// Record submission always goes through the intake API. Listing and
	// admin deletion prefer the API and fall back to direct database
	// access when a connection is available.
	var records intake.Source = client
	var remover intake.Remover = client
	db, err := database.Open(cfg.Database.DSN(),
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)
	if err != nil {
		log.Warn("Direct database access unavailable, using intake API only", "error", err)
	} else {
		defer database.CloseDB(db)
		store := database.NewStore(db, log)
		records = intake.NewFallbackSource(client, intake.NewStoreSource(store), log)
		remover = intake.NewFallbackRemover(client, intake.NewStoreRemover(store), log)
	}

	var assistant assist.Responder
	if cfg.Gemini.APIKey == "" {
		log.Warn("Gemini API key not configured, assistant replies disabled")
	} else {
		assistant, err = assist.NewResponder(ctx, assist.Config{
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			Temperature: cfg.Gemini.Temperature,
			Instruction: cfg.Gemini.Instruction,
			Timeout:     cfg.Gemini.Timeout,
		}, log)
		if err != nil {
			log.Error("Failed to initialize assistant", "error", err)
			return 1
		}
	}

	hDeps := handlers.HandlerDeps{
		Logger:     log,
		Config:     cfg,
		Records:    records,
		Remover:    remover,
		Submitter:  client,
		Controller: dialogue.NewController(client, assistant, log),
		Sessions:   dialogue.NewManager(),
		Admins:     handlers.NewAdminSet(),
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewChatHandler(hDeps)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	log.Info("Starting bot...")
	tg.Start(ctx)

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Bot stopped due to error", "error", err)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
