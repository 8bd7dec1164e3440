package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oakline/shopdata/internal/app"
	"github.com/oakline/shopdata/internal/load"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	logger.Info("loading CSV data into database",
		slog.String("data_dir", cfg.DataDir),
		slog.String("db", cfg.DatabasePath))

	if err := load.Run(ctx, cfg.DataDir, cfg.DatabasePath, logger); err != nil {
		logger.Error("load", slog.Any("error", err))
		os.Exit(1)
	}
}
