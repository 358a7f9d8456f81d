// internal/profile/memory.go
//
// In-memory key-value backend for profiles.
// Used in tests and when no database is configured.
//
// Characteristics:
//   - Entries keyed by owner, then key.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package profile

import (
	"context"
	"sync"
)

// Memory holds KV entries for many owners.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]map[string]string // owner -> key -> value
}

// NewMemory constructs an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]map[string]string)}
}

// For returns the KV of one owner.
func (m *Memory) For(owner string) KV { return memoryKV{m: m, owner: owner} }

type memoryKV struct {
	m     *Memory
	owner string
}

func (kv memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.m.mu.RLock()
	defer kv.m.mu.RUnlock()
	v, ok := kv.m.entries[kv.owner][key]
	return v, ok, nil
}

func (kv memoryKV) Set(_ context.Context, key, value string) error {
	kv.m.mu.Lock()
	defer kv.m.mu.Unlock()
	if kv.m.entries[kv.owner] == nil {
		kv.m.entries[kv.owner] = make(map[string]string)
	}
	kv.m.entries[kv.owner][key] = value
	return nil
}
