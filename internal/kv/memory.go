package kv

import "sync"

// Memory is an in-process Store. Nothing survives the process.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string

	// FailWrites makes every Set return this error when non-nil.
	FailWrites error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok, nil
}

// Set replaces the value for key.
func (m *Memory) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.entries[key] = value
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
