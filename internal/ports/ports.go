package ports

import (
	"context"
	"time"

	"github.com/thomaswright/algorithm-arena/internal/domain"
)

// DocumentSource pulls the full raw document set from upstream hosting.
type DocumentSource interface {
	FetchAll(ctx context.Context) ([]domain.RawDocument, error)
}

// Markdown renders challenge READMEs far enough to query their leading
// elements. Both methods return HTML fragments; an absent element yields "".
type Markdown interface {
	FirstHeading(markdown string) string
	FirstParagraph(markdown string) string
}

// Scheduler controls when refreshes execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
