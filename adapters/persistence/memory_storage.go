package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// MemoryStorage keeps slots in process memory. Used by tests and the
// "memory" driver.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, slot string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[slot]
	if !ok {
		return "", portfolio.ErrSlotNotFound
	}
	return v, nil
}

func (m *MemoryStorage) Set(_ context.Context, slot string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

func (m *MemoryStorage) Name() string { return "memory" }
