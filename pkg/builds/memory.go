package builds

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps builds in a map guarded by a mutex.
type MemoryStore struct {
	mu     sync.RWMutex
	builds map[string]*Build
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{builds: make(map[string]*Build), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Build, error) {
	s.mu.RLock()
	b, ok := s.builds[id]
	s.mu.RUnlock()
	if !ok || b.IsExpired(s.now()) {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *MemoryStore) Put(_ context.Context, b *Build) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builds[b.ID] = b
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.builds, id)
	return nil
}

func (s *MemoryStore) Cleanup(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, b := range s.builds {
		if b.IsExpired(now) {
			delete(s.builds, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored builds, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.builds)
}

var _ Store = (*MemoryStore)(nil)
