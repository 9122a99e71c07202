package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-securnote/models"
)

type memoryActivityRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records []models.ActivityRecord
}

// NewMemoryActivityRepository returns an in-memory [ActivityRepository].
func NewMemoryActivityRepository() ActivityRepository {
	return &memoryActivityRepository{}
}

func (r *memoryActivityRepository) Log(_ context.Context, record models.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, record)
	return nil
}

func (r *memoryActivityRepository) Recent(_ context.Context, limit int) ([]models.ActivityRecord, error) {
	return r.collect(limit, func(models.ActivityRecord) bool { return true }), nil
}

func (r *memoryActivityRepository) ByUser(_ context.Context, username string, limit int) ([]models.ActivityRecord, error) {
	return r.collect(limit, func(rec models.ActivityRecord) bool { return rec.Username == username }), nil
}

// collect walks the log backwards so the newest records come first.
func (r *memoryActivityRepository) collect(limit int, match func(models.ActivityRecord) bool) []models.ActivityRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ActivityRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		if match(r.records[i]) {
			out = append(out, r.records[i])
		}
	}
	return out
}
