package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/thomaswright/algorithm-arena/internal/config"
	"github.com/thomaswright/algorithm-arena/internal/infrastructure/github"
	"github.com/thomaswright/algorithm-arena/internal/infrastructure/markdown"
	"github.com/thomaswright/algorithm-arena/internal/infrastructure/scheduler"
	"github.com/thomaswright/algorithm-arena/internal/logging"
	"github.com/thomaswright/algorithm-arena/internal/record"
	"github.com/thomaswright/algorithm-arena/internal/source"
	"github.com/thomaswright/algorithm-arena/internal/store"
	"github.com/thomaswright/algorithm-arena/internal/usecase"
	"github.com/thomaswright/algorithm-arena/internal/web"
)

const shutdownTimeout = 5 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	refresher *usecase.Refresher
	server    *http.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := source.NewRegistry()
	registry.Register(github.NewClient(cfg.Source, nil, baseLogger.With("component", "source.github")))

	fetcher := source.NewFetchSource(registry, cfg.Source.Name, cfg.Source.Workers,
		baseLogger.With("component", "fetch"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:  fetcher,
		Builder: record.NewBuilder(markdown.NewRenderer()),
		Store:   store.New(),
		Logger:  baseLogger.With("component", "pipeline"),
	})

	refresher := usecase.NewRefresher(
		scheduler.NewTicker(cfg.Refresh.IntervalDuration()),
		pipeline,
	)

	viewer, err := web.NewServer(pipeline, cfg.Site, baseLogger.With("component", "web"))
	if err != nil {
		return nil, fmt.Errorf("build web server: %w", err)
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		refresher: refresher,
		server: &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: viewer.Router(),
		},
	}, nil
}

// Run starts the periodic refresh and serves the viewer until the context
// is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.refresher.Start(ctx); err != nil {
		return fmt.Errorf("start refresher: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_ = a.refresher.Stop(shutdownCtx)
	return a.server.Shutdown(shutdownCtx)
}
