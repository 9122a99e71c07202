package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-securnote/models"
)

type challengeKey struct {
	username string
	data     string
}

type memoryChallengeStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.Challenge
	byNonce map[challengeKey]*models.Challenge
}

// NewMemoryChallengeStore returns an in-memory [ChallengeStore] indexed by
// (username, challenge data).
func NewMemoryChallengeStore() ChallengeStore {
	return &memoryChallengeStore{
		byID:    make(map[string]*models.Challenge),
		byNonce: make(map[challengeKey]*models.Challenge),
	}
}

func (s *memoryChallengeStore) Save(_ context.Context, challenge models.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := challenge
	s.byID[c.ChallengeID] = &c
	s.byNonce[challengeKey{username: c.Username, data: c.ChallengeData}] = &c
	return nil
}

func (s *memoryChallengeStore) FindByNonce(_ context.Context, username, challengeData string) (models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byNonce[challengeKey{username: username, data: challengeData}]
	if !ok {
		return models.Challenge{}, ErrChallengeNotFound
	}
	return *c, nil
}

func (s *memoryChallengeStore) MarkUsed(_ context.Context, challengeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[challengeID]
	if !ok || c.Used {
		return false, nil
	}
	c.Used = true
	return true, nil
}

func (s *memoryChallengeStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, c := range s.byID {
		if c.CreatedAt.Before(cutoff) {
			delete(s.byID, id)
			delete(s.byNonce, challengeKey{username: c.Username, data: c.ChallengeData})
			deleted++
		}
	}
	return deleted, nil
}
