package store

import (
	"context"
	"sync"
)

type entry struct {
	data    []byte
	version int64
}

// MemoryStore keeps ledgers in process memory. Used for tests and for
// STORE_TYPE=memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, 0, ErrNotFound
	}
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return data, e.version, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.entries[key].version
	if current != expectedVersion {
		return current, ErrVersionConflict
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.entries[key] = entry{data: buf, version: current + 1}
	return current + 1, nil
}
