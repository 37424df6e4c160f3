package keychain

import "sync"

// Memory is a process-local Store used when no OS keychain is reachable (headless, CI, containers).
type Memory struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{secrets: make(map[string]string)}
}

func (m *Memory) Get(providerID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	secret, ok := m.secrets[providerID]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (m *Memory) Set(providerID, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secrets[providerID] = secret
	return nil
}

func (m *Memory) Delete(providerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.secrets, providerID)
	return nil
}
