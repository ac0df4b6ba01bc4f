package auth

import (
	"sync"
)

// MemoryStore is a Store which keeps the session in memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns the stored value for key
func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores the value for key
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

// Update stores all values at once
func (s *MemoryStore) Update(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range values {
		s.set(key, value)
	}
}

func (s *MemoryStore) set(key, value string) {
	if value == "" {
		delete(s.values, key)
		return
	}
	s.values[key] = value
}

// Clear removes the session
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range SessionKeys {
		delete(s.values, key)
	}
}

// Save is a no-op
func (s *MemoryStore) Save() error { return nil }
