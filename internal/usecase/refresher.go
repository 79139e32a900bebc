package usecase

import (
	"context"
	"time"

	"github.com/thomaswright/algorithm-arena/internal/ports"
)

// Refresher wires the periodic driver with the refresh pipeline.
type Refresher struct {
	driver   ports.Scheduler
	pipeline *Pipeline
}

// NewRefresher returns a helper to start/stop recurring refreshes.
func NewRefresher(driver ports.Scheduler, pipeline *Pipeline) *Refresher {
	return &Refresher{driver: driver, pipeline: pipeline}
}

// Start registers the pipeline with the provided scheduler. A failed
// refresh keeps the previous model; the next tick tries again.
func (r *Refresher) Start(ctx context.Context) error {
	if r.driver == nil || r.pipeline == nil {
		return nil
	}

	job := func(time.Time) {
		if err := r.pipeline.Refresh(ctx); err != nil && r.pipeline.logger != nil {
			r.pipeline.logger.Warn("refresh failed", "error", err)
		}
	}

	return r.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}
	return r.driver.Stop(ctx)
}
