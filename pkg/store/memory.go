package store

import (
	"context"
	"sync"

	"github.com/diagramlab/stencil/pkg/document"
)

// MemoryStore keeps documents in a map. Intended for development and tests;
// contents are lost when the process exits.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]document.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]document.Document)}
}

// Get retrieves a document by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return document.Document{}, ErrNotFound
	}
	return doc, nil
}

// Set stores a document under the given ID.
func (s *MemoryStore) Set(ctx context.Context, id string, doc document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = doc
	return nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// List returns the IDs of all stored documents.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
