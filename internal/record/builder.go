// Package record derives structured challenge records from raw README
// documents.
package record

import (
	"github.com/thomaswright/algorithm-arena/internal/domain"
	"github.com/thomaswright/algorithm-arena/internal/extract"
	"github.com/thomaswright/algorithm-arena/internal/ports"
	"github.com/thomaswright/algorithm-arena/internal/winners"
)

const (
	winnersMarker = "### Winner"
	prizesMarker  = "### Prizes"
)

// tiedChallenge is a permanent data correction. Challenge 2's README lists
// two first-place entries, so bullet order does not imply rank there; both
// leading entries take rank 0. This applies to that single challenge only.
const tiedChallenge = domain.ChallengeID(2)

// Builder turns raw documents into challenge records.
type Builder struct {
	markdown ports.Markdown
}

// NewBuilder wires the markdown rendering collaborator.
func NewBuilder(markdown ports.Markdown) *Builder {
	return &Builder{markdown: markdown}
}

// Build derives one ChallengeRecord. A README missing its title, summary,
// or winners section produces a record with those parts empty; Build never
// fails.
func (b *Builder) Build(doc domain.RawDocument) domain.ChallengeRecord {
	rec := domain.ChallengeRecord{ID: doc.ID, URL: doc.URL}

	if b.markdown != nil {
		rec.Title = b.markdown.FirstHeading(doc.Markdown)
		rec.Summary = b.markdown.FirstParagraph(doc.Markdown)
	}

	section := extract.Between(doc.Markdown, winnersMarker, prizesMarker)
	rec.Winners = winners.Parse(section, doc.URL)

	if doc.ID == tiedChallenge && len(rec.Winners) >= 2 {
		rec.Winners[0].Rank = 0
		rec.Winners[1].Rank = 0
	}

	return rec
}
