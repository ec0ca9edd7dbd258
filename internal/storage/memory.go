package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryObjects keeps blobs in a map. It backs NewMemory, used by tests
// and local development without an object-storage endpoint.
type memoryObjects struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns a Store over an in-process object map.
func NewMemory() *Store {
	return NewStore(&memoryObjects{blobs: make(map[string][]byte)})
}

func (m *memoryObjects) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryObjects) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *memoryObjects) Stat(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memoryObjects) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.blobs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryObjects) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[key]; !ok {
		return ErrNotFound
	}
	delete(m.blobs, key)
	return nil
}
