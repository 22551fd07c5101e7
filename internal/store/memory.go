package store

import (
	"context"
	"sync"
)

// memoryStorage is a process-local [KeyValueStorage]. It backs the token slot
// when the local database cannot be opened.
type memoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStorage returns an empty in-memory [KeyValueStorage].
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{slots: make(map[string]string)}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[key]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}
