package persist

import (
	"context"
	"fmt"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryStore returns a Store backed by a plain map, guarded by a
// mutex, usually for testing or short-lived processes.
func NewMemoryStore() Store {
	return &memoryStore{entries: map[string][]byte{}}
}

func (s *memoryStore) Store(ctx context.Context, name string, b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[name]; exists {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	s.entries[name] = cp
	return nil
}

func (s *memoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.entries[name]
	if !ok {
		return nil, fmt.Errorf("persist: no entry for %s", name)
	}
	return b, nil
}
