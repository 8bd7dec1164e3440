package main

import (
	"log/slog"
	"os"

	"github.com/oakline/shopdata/internal/app"
	"github.com/oakline/shopdata/internal/generate"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	logger.Info("generating synthetic e-commerce data",
		slog.Int("customers", generate.NumCustomers),
		slog.Int("products", generate.NumProducts),
		slog.Int("orders", generate.NumOrders),
		slog.Int("seed", generate.Seed))

	if err := generate.New(logger).Run(cfg.DataDir); err != nil {
		logger.Error("generate", slog.Any("error", err))
		os.Exit(1)
	}
}
