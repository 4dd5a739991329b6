package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmaksimovs/chatrunner/internal/config"
	"github.com/dmaksimovs/chatrunner/internal/logging"
	"github.com/dmaksimovs/chatrunner/internal/repositories/repomanager"
	"github.com/dmaksimovs/chatrunner/internal/services"
)

func main() {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.LoadConfig()

	db, m, err := repomanager.Open(cfg)
	if err != nil {
		logger.Error(ctx, "store open failed", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	store := services.NewStore(db, m, logger)
	if err := store.InitSchema(ctx); err != nil {
		logger.Error(ctx, "schema initialization failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info(ctx, "storage ready", "backend", cfg.Backend)
}
