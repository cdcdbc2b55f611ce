package flash

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
)

var _ ports.FlashStore = (*MemoryStore)(nil)

type memoryEntry struct {
	flash     dto.Flash
	expiresAt time.Time
}

// MemoryStore implementación en memoria del relay de flashes, para
// desarrollo sin Redis y para tests. Misma semántica que RedisStore:
// una ranura por usuario, lectura destructiva, TTL.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64]memoryEntry
}

// NewMemoryStore construye el store en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int64]memoryEntry)}
}

// Push guarda el mensaje del usuario, pisando cualquier anterior.
func (s *MemoryStore) Push(_ context.Context, userID int64, f dto.Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = memoryEntry{flash: f, expiresAt: time.Now().Add(flashTTL)}
	return nil
}

// Pop devuelve y elimina el mensaje pendiente; nil si no hay o expiró.
func (s *MemoryStore) Pop(_ context.Context, userID int64) (*dto.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		return nil, nil
	}
	delete(s.entries, userID)
	if time.Now().After(e.expiresAt) {
		return nil, nil
	}
	f := e.flash
	return &f, nil
}
