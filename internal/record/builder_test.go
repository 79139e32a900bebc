package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomaswright/algorithm-arena/internal/domain"
)

// stubMarkdown fakes the rendering collaborator: the first "# " line is the
// heading, the first non-heading line the paragraph.
type stubMarkdown struct{}

func (stubMarkdown) FirstHeading(md string) string {
	for _, line := range strings.Split(md, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return rest
		}
	}
	return ""
}

func (stubMarkdown) FirstParagraph(md string) string {
	for _, line := range strings.Split(md, "\n") {
		// Headings and list items are not paragraphs.
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "*") {
			continue
		}
		return line
	}
	return ""
}

func doc(id domain.ChallengeID, markdown string) domain.RawDocument {
	return domain.RawDocument{
		ID:       id,
		Slug:     "weekly-challenge-1-sorting",
		URL:      "https://github.com/Algorithm-Arena/weekly-challenge-1-sorting",
		Markdown: markdown,
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	markdown := "# Challenge 1\nSort all the things.\n### Winner\n* @alice\n* @bob\n### Prizes\ncash\n"

	rec := NewBuilder(stubMarkdown{}).Build(doc(1, markdown))

	assert.Equal(t, domain.ChallengeID(1), rec.ID)
	assert.Equal(t, "Challenge 1", rec.Title)
	assert.Equal(t, "Sort all the things.", rec.Summary)
	require.Len(t, rec.Winners, 2)
	assert.Equal(t, 0, rec.Winners[0].Rank)
	assert.Equal(t, 1, rec.Winners[1].Rank)
}

func TestBuildMissingPrizesMarkerYieldsNoWinners(t *testing.T) {
	t.Parallel()

	markdown := "# Challenge 1\nIntro.\n### Winner\n* @alice\n"

	rec := NewBuilder(stubMarkdown{}).Build(doc(1, markdown))

	assert.Empty(t, rec.Winners)
	assert.Equal(t, "Challenge 1", rec.Title)
}

func TestBuildMissingTitleAndSummary(t *testing.T) {
	t.Parallel()

	rec := NewBuilder(stubMarkdown{}).Build(doc(1, "### Winner\n* @alice\n### Prizes\n"))

	assert.Equal(t, "", rec.Title)
	assert.Equal(t, "", rec.Summary)
	require.Len(t, rec.Winners, 1)
}

func TestBuildFirstPlaceTie(t *testing.T) {
	t.Parallel()

	markdown := "# Challenge 2\nIntro.\n### Winner\n* @alice\n* @bob\n* @carol\n### Prizes\n"

	rec := NewBuilder(stubMarkdown{}).Build(doc(2, markdown))

	require.Len(t, rec.Winners, 3)
	assert.Equal(t, 0, rec.Winners[0].Rank)
	assert.Equal(t, 0, rec.Winners[1].Rank)
	assert.Equal(t, 2, rec.Winners[2].Rank)
}

func TestBuildTieIsNotGeneralized(t *testing.T) {
	t.Parallel()

	markdown := "# Challenge 3\nIntro.\n### Winner\n* @alice\n* @bob\n### Prizes\n"

	rec := NewBuilder(stubMarkdown{}).Build(doc(3, markdown))

	require.Len(t, rec.Winners, 2)
	assert.Equal(t, 0, rec.Winners[0].Rank)
	assert.Equal(t, 1, rec.Winners[1].Rank)
}
