package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	identities store.IdentityRepository
	deriver    crypto.KeyDeriver

	authSaltSize int
	noteSaltSize int
	zkSaltSize   int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Salt sizes come from cfg; the
// deriver carries the PBKDF2 work factor.
func NewAuthService(identities store.IdentityRepository, deriver crypto.KeyDeriver, cfg config.Security, log *logger.Logger) AuthService {
	log.Debug().
		Int("auth_salt_size", cfg.AuthSaltSize).
		Int("note_salt_size", cfg.NoteSaltSize).
		Int("zk_salt_size", cfg.ZKSaltSize).
		Msg("auth service created")

	return &authService{
		identities:   identities,
		deriver:      deriver,
		authSaltSize: cfg.AuthSaltSize,
		noteSaltSize: cfg.NoteSaltSize,
		zkSaltSize:   cfg.ZKSaltSize,
		now:          time.Now,
		logger:       log,
	}
}

// CreateIdentity refuses a taken username and returns an identity with three fresh salts and both verifiers. Nothing is stored;
// the caller attaches a certificate and saves it.
//
// Returns:
//   - ErrUserAlreadyExists if the username is taken.
//   - A wrapped storage or entropy error otherwise.
func (a *authService) CreateIdentity(ctx context.Context, username, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	exists, err := a.identities.Exists(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("identity lookup failed")
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}
	if exists {
		return models.Identity{}, ErrUserAlreadyExists
	}

	authSalt, err := a.deriver.GenerateSalt(a.authSaltSize)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error generating auth salt: %w", err)
	}
	noteSalt, err := a.deriver.GenerateSalt(a.noteSaltSize)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error generating note salt: %w", err)
	}
	zkSalt, err := a.deriver.GenerateSalt(a.zkSaltSize)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error generating zk salt: %w", err)
	}

	return models.Identity{
		Username: username,
		AuthVerifier: models.Verifier{
			Salt: authSalt,
			Hash: a.deriver.DeriveVerifier(authSalt, password),
		},
		NoteSalt: noteSalt,
		ZKVerifier: models.Verifier{
			Salt: zkSalt,
			Hash: a.deriver.DeriveVerifier(zkSalt, password),
		},
		CreatedAt: a.now().UTC(),
		IsActive:  true,
	}, nil
}

// Authenticate verifies password against the stored auth verifier in
// constant time and derives the note key.
func (a *authService) Authenticate(ctx context.Context, username, password string) ([]byte, error) {
	identity, err := a.GetIdentity(ctx, username)
	if err != nil {
		return nil, err
	}

	if !a.deriver.VerifyPassword(identity.AuthVerifier.Salt, password, identity.AuthVerifier.Hash) {
		logger.FromContext(ctx).Info().Str("username", username).Msg("wrong password")
		return nil, ErrInvalidCredentials
	}

	return a.deriver.DeriveNoteKey(password, identity.NoteSalt), nil
}

// GetIdentity returns the stored identity or ErrUnknownUser.
func (a *authService) GetIdentity(ctx context.Context, username string) (models.Identity, error) {
	identity, err := a.identities.Get(ctx, username)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Identity{}, ErrUnknownUser
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("identity lookup failed")
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return identity, nil
}
