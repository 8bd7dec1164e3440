package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oakline/shopdata/internal/app"
	"github.com/oakline/shopdata/internal/report"
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
	logger.Info("generating order report",
		slog.String("db", cfg.DatabasePath),
		slog.String("output", cfg.ReportPath))

	if err := report.Run(ctx, cfg.DatabasePath, cfg.ReportPath, cfg.PreviewRows, logger); err != nil {
		logger.Error("report", slog.Any("error", err))
		os.Exit(1)
	}
}
