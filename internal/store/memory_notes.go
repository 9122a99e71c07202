package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-securnote/models"
)

type memoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[string]models.Note
}

// NewMemoryNoteRepository returns an in-memory [NoteRepository].
func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{notes: make(map[string]models.Note)}
}

func (r *memoryNoteRepository) Save(_ context.Context, note models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.NoteID] = note
	return nil
}

func (r *memoryNoteRepository) ListByUser(_ context.Context, username string) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Note, 0)
	for _, n := range r.notes {
		if n.Username == username {
			out = append(out, n)
		}
	}

	slices.SortFunc(out, func(a, b models.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.NoteID, a.NoteID)
	})
	return out, nil
}

func (r *memoryNoteRepository) Get(_ context.Context, username, noteID string) (models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[noteID]
	if !ok || n.Username != username {
		return models.Note{}, ErrNoteNotFound
	}
	return n, nil
}

func (r *memoryNoteRepository) Delete(_ context.Context, username, noteID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.Username != username {
		return false, nil
	}
	delete(r.notes, noteID)
	return true, nil
}
