package source

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/thomaswright/algorithm-arena/internal/domain"
	"github.com/thomaswright/algorithm-arena/internal/ports"
)

const defaultWorkers = 8

// FetchSource implements ports.DocumentSource via a registered source
// strategy, pulling READMEs concurrently.
type FetchSource struct {
	registry *Registry
	name     string
	workers  int
	logger   *slog.Logger
}

var _ ports.DocumentSource = (*FetchSource)(nil)

// NewFetchSource wires the registry with the configured source name.
func NewFetchSource(reg *Registry, name string, workers int, log *slog.Logger) *FetchSource {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &FetchSource{
		registry: reg,
		name:     name,
		workers:  workers,
		logger:   log,
	}
}

// FetchAll lists the challenge repositories and pulls each README. A slug
// without a challenge number or a failed fetch only omits that document;
// the set stays partial rather than failing the whole refresh. Documents
// come back sorted by descending id.
func (f *FetchSource) FetchAll(ctx context.Context) ([]domain.RawDocument, error) {
	if f.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}
	src, err := f.registry.Resolve(f.name)
	if err != nil {
		return nil, err
	}

	slugs, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	f.debug("listed repositories", "count", len(slugs))

	var (
		mu   sync.Mutex
		docs []domain.RawDocument
	)
	p := pool.New().WithMaxGoroutines(f.workers)
	for _, slug := range slugs {
		p.Go(func() {
			id, ok := domain.ParseChallengeID(slug)
			if !ok {
				f.warn("skip repository without challenge number", "slug", slug)
				return
			}
			md, err := src.Readme(ctx, slug)
			if err != nil {
				f.warn("skip unreadable readme", "slug", slug, "error", err)
				return
			}
			mu.Lock()
			docs = append(docs, domain.RawDocument{
				ID:       id,
				Slug:     slug,
				URL:      src.RepoURL(slug),
				Markdown: md,
			})
			mu.Unlock()
		})
	}
	p.Wait()

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID > docs[j].ID })
	f.debug("fetched documents", "count", len(docs))
	return docs, nil
}

func (f *FetchSource) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *FetchSource) warn(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}
