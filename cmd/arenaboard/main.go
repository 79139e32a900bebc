package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomaswright/algorithm-arena/internal/app"
	"github.com/thomaswright/algorithm-arena/internal/config"
	"github.com/thomaswright/algorithm-arena/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
