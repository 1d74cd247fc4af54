// Package localstore keeps client state between runs of the command line client
package localstore

import (
	"context"
	"sync"
)

// Keys used by the client
const (
	KeyPrefix = "assetmagnets."
	KeyToken  = KeyPrefix + "token"
	KeyUser   = KeyPrefix + "user"
	KeyMode   = KeyPrefix + "mode"
	KeyTheme  = KeyPrefix + "theme"
)

// CollectionKey returns the key holding a fallback collection
func CollectionKey(collection string) string {
	return KeyPrefix + collection
}

// Storage is a durable string key-value store
type Storage interface {
	// Method Get returns the value stored under key.
	//
	// The bool is false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Method Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Method Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Memory is an in-process Storage used by tests and ephemeral runs
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory storage
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements Storage
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Storage
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove implements Storage
func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
