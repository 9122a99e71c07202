package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/MKhiriev/go-securnote/models"
)

type memoryIdentityRepository struct {
	mu         sync.RWMutex
	identities map[string]models.Identity
}

// NewMemoryIdentityRepository returns an [IdentityRepository] that lives in
// process memory.
func NewMemoryIdentityRepository() IdentityRepository {
	return &memoryIdentityRepository{identities: make(map[string]models.Identity)}
}

func (r *memoryIdentityRepository) Save(_ context.Context, identity models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.Username]; ok {
		return ErrIdentityExists
	}
	r.identities[identity.Username] = cloneIdentity(identity)
	return nil
}

func (r *memoryIdentityRepository) Get(_ context.Context, username string) (models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[username]
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}
	return cloneIdentity(identity), nil
}

func (r *memoryIdentityRepository) Exists(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.identities[username]
	return ok, nil
}

func (r *memoryIdentityRepository) Update(_ context.Context, identity models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.Username]; !ok {
		return ErrIdentityNotFound
	}
	r.identities[identity.Username] = cloneIdentity(identity)
	return nil
}

// cloneIdentity copies every slice and the certificate so callers cannot
// mutate stored state.
func cloneIdentity(i models.Identity) models.Identity {
	out := i
	out.AuthVerifier.Salt = bytes.Clone(i.AuthVerifier.Salt)
	out.ZKVerifier.Salt = bytes.Clone(i.ZKVerifier.Salt)
	out.NoteSalt = bytes.Clone(i.NoteSalt)
	if i.Certificate != nil {
		cert := *i.Certificate
		cert.PublicKey = bytes.Clone(cert.PublicKey)
		cert.Signature = bytes.Clone(cert.Signature)
		out.Certificate = &cert
	}
	return out
}
