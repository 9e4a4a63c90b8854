package listing

import (
	"context"
	"sync"

	"homenest/models"
)

// FetchFunc retrieves the full listing collection from a backend.
type FetchFunc func(ctx context.Context) ([]models.Property, error)

// Store holds the most recently fetched, unfiltered listing collection.
// The collection is replaced wholesale on each successful refresh; there is
// no merge or partial update. Refreshes carry a monotonic sequence token so
// that when two refreshes overlap, a response belonging to an older request
// is discarded instead of silently overwriting newer data.
type Store struct {
	mu      sync.RWMutex
	records []models.Property
	issued  uint64 // last token handed out
	applied uint64 // token of the collection currently held
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current collection. Callers may read and
// reorder the result freely without affecting the store.
func (s *Store) Snapshot() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Begin issues a refresh token. Tokens are strictly increasing; Complete
// rejects any token older than the newest one issued.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Complete installs a fetched collection under the given token. It reports
// whether the collection was accepted: a token that is no longer the newest
// issued one is stale and leaves the store untouched.
func (s *Store) Complete(token uint64, records []models.Property) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.issued || token <= s.applied {
		return false
	}
	s.records = make([]models.Property, len(records))
	copy(s.records, records)
	s.applied = token
	return true
}

// Refresh fetches the collection and installs it, honoring the token
// protocol. On fetch failure the previous contents are retained and the
// error is returned; no retry is attempted.
func (s *Store) Refresh(ctx context.Context, fetch FetchFunc) error {
	token := s.Begin()
	records, err := fetch(ctx)
	if err != nil {
		return err
	}
	s.Complete(token, records)
	return nil
}
