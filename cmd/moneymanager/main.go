package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"moneymanager/internal/bot"
	"moneymanager/internal/config"
	"moneymanager/internal/ledger"
	applog "moneymanager/internal/log"
	"moneymanager/internal/sheets"
	"moneymanager/internal/sheets/google"
	"moneymanager/internal/sheets/memory"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; plain environment variables win in deployment.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: "main"})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store  sheets.Store
		sharer sheets.Sharer
	)
	switch cfg.DataBackend {
	case "sheets":
		cli, err := google.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets backend", "error", err)
			os.Exit(1)
		}
		store, sharer = cli, cli
		logger.Info("Initialized Google Sheets backend", "backend", cfg.DataBackend)
	default:
		mem := memory.New()
		store, sharer = mem, mem
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	}

	svc := ledger.NewService(store, sharer)

	h, err := bot.New(cfg.BotToken, svc, logger)
	if err != nil {
		logger.Error("Failed to initialize bot", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting moneymanager bot", "backend", cfg.DataBackend)
	h.Run(ctx)
	logger.Info("Bot stopped gracefully")
}
