package source

import (
	"context"
	"fmt"
	"testing"
)

// stubSource serves canned READMEs from memory.
type stubSource struct {
	slugs   []string
	readmes map[string]string
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) List(ctx context.Context) ([]string, error) {
	return s.slugs, nil
}

func (s *stubSource) Readme(ctx context.Context, slug string) (string, error) {
	md, ok := s.readmes[slug]
	if !ok {
		return "", fmt.Errorf("no readme for %s", slug)
	}
	return md, nil
}

func (s *stubSource) RepoURL(slug string) string {
	return "https://example.org/" + slug
}

func newFetchSource(stub *stubSource) *FetchSource {
	reg := NewRegistry()
	reg.Register(stub)
	return NewFetchSource(reg, "stub", 4, nil)
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	stub := &stubSource{
		slugs: []string{"weekly-challenge-1-sorting", "weekly-challenge-3-maze"},
		readmes: map[string]string{
			"weekly-challenge-1-sorting": "# One",
			"weekly-challenge-3-maze":    "# Three",
		},
	}

	docs, err := newFetchSource(stub).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll error: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	// Newest challenge first.
	if docs[0].ID != 3 || docs[1].ID != 1 {
		t.Fatalf("unexpected order: %v, %v", docs[0].ID, docs[1].ID)
	}
	if docs[0].URL != "https://example.org/weekly-challenge-3-maze" {
		t.Fatalf("unexpected url: %s", docs[0].URL)
	}
	if docs[1].Markdown != "# One" {
		t.Fatalf("unexpected markdown: %q", docs[1].Markdown)
	}
}

func TestFetchAllSkipsBrokenRepositories(t *testing.T) {
	t.Parallel()

	stub := &stubSource{
		slugs: []string{
			"weekly-challenge-1-sorting",
			"weekly-challenge-2-lisp", // readme fetch fails
			"meta-repo",               // no challenge number
		},
		readmes: map[string]string{
			"weekly-challenge-1-sorting": "# One",
		},
	}

	docs, err := newFetchSource(stub).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll error: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].ID != 1 {
		t.Fatalf("unexpected id: %v", docs[0].ID)
	}
}

func TestFetchAllUnknownSource(t *testing.T) {
	t.Parallel()

	fs := NewFetchSource(NewRegistry(), "missing", 1, nil)
	if _, err := fs.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for unregistered source")
	}
}
