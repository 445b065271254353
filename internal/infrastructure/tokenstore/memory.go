package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/tooswasher/storefront/internal/core/domain"
)

type memoryEntry struct {
	token   string
	expires time.Time
}

// MemoryStorage keeps tokens in process memory. Entries expire after ttl;
// a zero ttl keeps them until deleted.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStorage) Put(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{token: token}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryStorage) Fetch(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok {
		return "", domain.ErrNoToken
	}
	return e.token, nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryStorage) DeleteIfMatch(_ context.Context, key, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok || e.token != token {
		return false, nil
	}
	delete(m.entries, key)
	return true, nil
}

func (m *MemoryStorage) Ping(context.Context) error { return nil }

// Len reports live entries; expired ones are purged on the way.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.entries {
		if _, ok := m.live(k); ok {
			n++
		}
	}
	return n
}

// live must be called under lock.
func (m *MemoryStorage) live(key string) (memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
