package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
	"github.com/cognilaw/lexon/pkg/lexon/store"
)

// Store is an in-memory implementation of store.Store for tests and for
// running the analyzer without a database file.
type Store struct {
	mu       sync.RWMutex
	analyses map[string]store.Analysis
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{analyses: make(map[string]store.Analysis)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveAnalysis inserts or replaces an analysis, keyed by ID.
func (s *Store) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	if a.ID == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.ID] = copyAnalysis(a)
	return nil
}

// GetAnalysis returns an analysis by ID.
func (s *Store) GetAnalysis(ctx context.Context, id string) (store.Analysis, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.analyses[id]; ok {
		return copyAnalysis(a), true, nil
	}
	return store.Analysis{}, false, nil
}

// ListAnalyses returns analyses newest first.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]store.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	results := make([]store.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		results = append(results, copyAnalysis(a))
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID > results[j].ID
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteAnalysis removes an analysis by ID.
func (s *Store) DeleteAnalysis(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.analyses[id]; !ok {
		return internalerr.ErrNotFound
	}
	delete(s.analyses, id)
	return nil
}

func copyAnalysis(a store.Analysis) store.Analysis {
	out := a
	out.Clauses = make([]store.Clause, len(a.Clauses))
	copy(out.Clauses, a.Clauses)
	return out
}
