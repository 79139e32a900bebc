// Package markdown implements the rendering collaborator on top of
// goldmark and goquery.
package markdown

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"

	"github.com/thomaswright/algorithm-arena/internal/ports"
)

// Renderer converts README markdown to HTML and queries leading elements.
type Renderer struct {
	md goldmark.Markdown
}

var _ ports.Markdown = (*Renderer)(nil)

// NewRenderer builds a renderer with goldmark defaults.
func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// FirstHeading returns the inner HTML of the document's first h1, or "".
func (r *Renderer) FirstHeading(markdown string) string {
	return r.firstHTML(markdown, "h1")
}

// FirstParagraph returns the inner HTML of the document's first paragraph,
// or "".
func (r *Renderer) FirstParagraph(markdown string) string {
	return r.firstHTML(markdown, "p")
}

func (r *Renderer) firstHTML(markdown, selector string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return ""
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}

	html, err := sel.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}
