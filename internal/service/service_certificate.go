package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-securnote/internal/ca"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
)

type certificateService struct {
	identities store.IdentityRepository
	authority  CertificateAuthority
	keySize    int

	logger *logger.Logger
}

// NewCertificateService constructs a CertificateService. User key pairs
// are generated with the RSA size from cfg.
func NewCertificateService(identities store.IdentityRepository, authority CertificateAuthority, cfg config.Security, log *logger.Logger) CertificateService {
	keySize := cfg.RSAKeySize
	if keySize <= 0 {
		keySize = config.DefaultRSAKeySize
	}

	return &certificateService{
		identities: identities,
		authority:  authority,
		keySize:    keySize,
		logger:     log,
	}
}

// IssueForIdentity generates a key pair for the identity, has the authority
// sign the public half and returns the identity with the certificate
// attached. The private key is not kept.
func (c *certificateService) IssueForIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if identity.HasCertificate() {
		return models.Identity{}, ErrCertificateAlreadyIssued
	}

	key, err := ca.GenerateKeyPair(c.keySize)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error generating user key pair: %w", err)
	}
	publicKeyPEM, err := ca.MarshalPublicKeyPEM(&key.PublicKey)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error encoding user public key: %w", err)
	}

	cert, err := c.authority.Issue(identity.Username, publicKeyPEM)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", identity.Username).Msg("certificate issue failed")
		return models.Identity{}, fmt.Errorf("certificate issue failed: %w", err)
	}

	identity.Certificate = &cert
	return identity, nil
}

func (c *certificateService) IsAccessValid(ctx context.Context, username string) (bool, error) {
	identity, err := c.identities.Get(ctx, username)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("identity lookup failed: %w", err)
	}

	if !identity.HasCertificate() || identity.Certificate.Username != username {
		return false, nil
	}

	valid, err := c.authority.Verify(ctx, *identity.Certificate)
	if err != nil {
		return false, fmt.Errorf("certificate verification failed: %w", err)
	}
	return valid, nil
}

// Revoke puts the user's certificate on the revocation list. It reports
// false when there is no such user or certificate, or when the
// certificate was revoked before.
func (c *certificateService) Revoke(ctx context.Context, username, reason string) (bool, error) {
	identity, err := c.identities.Get(ctx, username)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("identity lookup failed: %w", err)
	}
	if !identity.HasCertificate() {
		return false, nil
	}

	revoked, err := c.authority.Revoke(ctx, identity.Certificate.CertID, reason)
	if err != nil {
		return false, fmt.Errorf("revocation failed: %w", err)
	}

	if revoked {
		logger.FromContext(ctx).Info().
			Str("username", username).
			Str("cert_id", identity.Certificate.CertID).
			Str("reason", reason).
			Msg("certificate revoked")
	}
	return revoked, nil
}

func (c *certificateService) Certificate(ctx context.Context, username string) (models.Certificate, error) {
	identity, err := c.identities.Get(ctx, username)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Certificate{}, ErrUnknownUser
	}
	if err != nil {
		return models.Certificate{}, fmt.Errorf("identity lookup failed: %w", err)
	}
	if !identity.HasCertificate() {
		return models.Certificate{}, ErrCertificateNotFound
	}

	return *identity.Certificate, nil
}

func (c *certificateService) RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error) {
	return c.authority.RevokedCertificates(ctx)
}

func (c *certificateService) AuthorityPublicKey() ([]byte, error) {
	return c.authority.PublicKeyPEM()
}
