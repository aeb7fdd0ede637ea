package store

import (
	"context"
	"sync"

	"github.com/serroba/tiny-go/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// Entries live until the process exits. Writers hold the lock exclusively,
// readers share it.
type MemoryStore struct {
	mu   sync.RWMutex
	urls map[shortener.Code]shortener.ShortURL
}

// NewMemoryStore creates a new in-memory URL store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		urls: make(map[shortener.Code]shortener.ShortURL),
	}
}

// Save stores a copy of shortURL, overwriting any entry with the same code.
func (m *MemoryStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	entry := *shortURL

	m.mu.Lock()
	defer m.mu.Unlock()

	m.urls[entry.Code] = entry

	return nil
}

// GetByCode returns a copy of the entry stored for code.
func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &entry, nil
}

// Len returns the number of stored codes.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.urls)
}

// Ping always succeeds; the store has no backing connection.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Shutdown is a no-op for MemoryStore.
func (m *MemoryStore) Shutdown() error {
	return nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
