package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory keeps JSON values in a map. Values round-trip through encoding/json
// so callers observe the same semantics as the SQLite store.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string, dst any) error {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dst)
}

func (m *Memory) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
	m.writes++
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
	return nil
}

// Writes reports how many Set/Delete calls have been made.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
