// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps serialized state blobs in a map. States round-trip
// through the codec on every Load/Save so callers never share mutable
// structures with the store.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) (*roster.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	return roster.Deserialize(raw)
}

func (m *Memory) Save(_ context.Context, key string, state *roster.State) error {
	raw, err := roster.Serialize(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = raw
	return nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[key]
	return ok, nil
}
