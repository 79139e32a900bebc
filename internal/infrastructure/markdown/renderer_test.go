package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	md := "# Weekly Challenge *7*\n\nBuild a thing.\n"
	assert.Equal(t, "Weekly Challenge <em>7</em>", r.FirstHeading(md))
}

func TestFirstParagraph(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	md := "# Title\n\nBuild a **thing** this week.\n\nSecond paragraph.\n"
	assert.Equal(t, "Build a <strong>thing</strong> this week.", r.FirstParagraph(md))
}

func TestMissingElementsYieldEmpty(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	assert.Equal(t, "", r.FirstHeading("just a paragraph\n"))
	assert.Equal(t, "", r.FirstParagraph("# only a title\n"))
	assert.Equal(t, "", r.FirstHeading(""))
}

func TestSubheadingIsNotTheTitle(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	md := "## Section\n\n# Real Title\n"
	assert.Equal(t, "Real Title", r.FirstHeading(md))
}
