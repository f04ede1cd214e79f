package kvstore

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
}

// MemoryFactory keeps one MemoryStore per session. Used in tests and as a
// fallback when no Redis address is configured.
type MemoryFactory struct {
	mu       sync.Mutex
	sessions map[string]*MemoryStore
}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{sessions: make(map[string]*MemoryStore)}
}

func (f *MemoryFactory) ForSession(sessionID string) Store {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		s = NewMemory()
		f.sessions[sessionID] = s
	}
	return s
}
