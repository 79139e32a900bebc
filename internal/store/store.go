// Package store owns the accumulated raw document set. State is replaced
// wholesale and snapshots are copies, so derived structures are always
// rebuilt from scratch, never patched in place.
package store

import (
	"sort"
	"sync"

	"github.com/thomaswright/algorithm-arena/internal/domain"
)

// Store maps challenge ids to their raw documents.
type Store struct {
	mu   sync.RWMutex
	docs map[domain.ChallengeID]domain.RawDocument
}

// New builds an empty store.
func New() *Store {
	return &Store{docs: map[domain.ChallengeID]domain.RawDocument{}}
}

// ReplaceAll swaps in a freshly fetched document set.
func (s *Store) ReplaceAll(docs []domain.RawDocument) {
	next := make(map[domain.ChallengeID]domain.RawDocument, len(docs))
	for _, doc := range docs {
		next[doc.ID] = doc
	}
	s.mu.Lock()
	s.docs = next
	s.mu.Unlock()
}

// Snapshot returns a copy of the document set sorted by descending id, the
// newest challenge first.
func (s *Store) Snapshot() []domain.RawDocument {
	s.mu.RLock()
	docs := make([]domain.RawDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID > docs[j].ID })
	return docs
}

// Len reports how many documents have been accumulated.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
