package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-securnote/models"
)

type memoryRevocationLedger struct {
	mu      sync.RWMutex
	index   map[string]struct{}
	entries []models.RevocationEntry
}

// NewMemoryRevocationLedger returns an in-memory [RevocationLedger].
func NewMemoryRevocationLedger() RevocationLedger {
	return &memoryRevocationLedger{index: make(map[string]struct{})}
}

func (l *memoryRevocationLedger) Add(_ context.Context, entry models.RevocationEntry) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[entry.CertID]; ok {
		return false, nil
	}
	l.index[entry.CertID] = struct{}{}
	l.entries = append(l.entries, entry)
	return true, nil
}

func (l *memoryRevocationLedger) Contains(_ context.Context, certID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.index[certID]
	return ok, nil
}

func (l *memoryRevocationLedger) List(context.Context) ([]models.RevocationEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.RevocationEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
