package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// MemoryStore is a process-local snapshot store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]snapshot.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]snapshot.Document)}
}

// cloneDoc copies a document so callers and the store never share
// mutable state.
func cloneDoc(doc snapshot.Document) snapshot.Document {
	return snapshot.Document{
		Vertices:     maps.Clone(doc.Vertices),
		Edges:        slices.Clone(doc.Edges),
		Periphery:    slices.Clone(doc.Periphery),
		NextVertexID: doc.NextVertexID,
	}
}

func (s *MemoryStore) Save(ctx context.Context, name string, doc snapshot.Document) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, name string) (snapshot.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return snapshot.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.docs)), nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.docs, name)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
