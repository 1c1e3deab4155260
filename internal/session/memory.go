package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-memory storage. It is the default
// backend and the one used in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte // sessionID -> key -> value
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.sessions[sessionID][key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, ok := s.sessions[sessionID]
	if !ok {
		keys = make(map[string][]byte)
		s.sessions[sessionID] = keys
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	keys[key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions[sessionID], key)
	return nil
}
