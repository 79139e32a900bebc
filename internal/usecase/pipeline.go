package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/thomaswright/algorithm-arena/internal/domain"
	"github.com/thomaswright/algorithm-arena/internal/leaderboard"
	"github.com/thomaswright/algorithm-arena/internal/ports"
	"github.com/thomaswright/algorithm-arena/internal/record"
	"github.com/thomaswright/algorithm-arena/internal/store"
)

// Model is the fully derived view state: the chronological challenge feed
// and the aggregated leaderboard. A refresh builds a new Model and swaps it
// in wholesale; an existing Model is never mutated.
type Model struct {
	Records []domain.ChallengeRecord
	Board   leaderboard.Board
}

// PipelineDeps wires the driven adapters into the refresh pipeline.
type PipelineDeps struct {
	Source  ports.DocumentSource
	Builder *record.Builder
	Store   *store.Store
	Logger  *slog.Logger
}

// Pipeline implements the fetch-extract-aggregate workflow.
type Pipeline struct {
	source  ports.DocumentSource
	builder *record.Builder
	store   *store.Store
	logger  *slog.Logger
	model   atomic.Pointer[Model]
}

// NewPipeline constructs the orchestration component with an empty model.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:  deps.Source,
		builder: deps.Builder,
		store:   deps.Store,
		logger:  deps.Logger,
	}
	p.model.Store(&Model{})
	return p
}

// Refresh refetches the document set and rebuilds the derived model from
// scratch. A partial fetch still produces a model; only a failure to list
// the series at all is an error.
func (p *Pipeline) Refresh(ctx context.Context) error {
	if p.source == nil {
		return nil
	}

	docs, err := p.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch documents: %w", err)
	}

	p.store.ReplaceAll(docs)
	p.model.Store(p.rebuild())

	if p.logger != nil {
		p.logger.Info("model rebuilt", "documents", p.store.Len())
	}
	return nil
}

// Model returns the latest derived state; an empty model before the first
// refresh completes.
func (p *Pipeline) Model() *Model {
	return p.model.Load()
}

// rebuild derives the whole model from the current document set. It is a
// pure function of the store snapshot.
func (p *Pipeline) rebuild() *Model {
	snapshot := p.store.Snapshot()
	records := make([]domain.ChallengeRecord, 0, len(snapshot))
	for _, doc := range snapshot {
		records = append(records, p.builder.Build(doc))
	}
	return &Model{
		Records: records,
		Board:   leaderboard.Aggregate(records),
	}
}
