// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ca implements the SecurNote certificate authority. It signs
// username-to-public-key bindings with RSA-PSS/SHA-256 and checks them
// against the certificate revocation list.
package ca

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	securecrypto "github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

// certIDSize is the number of random bytes in a certificate id.
const certIDSize = 16

// pssOptions is used for both signing and verification. Auto picks the
// maximal salt when signing and detects it when verifying.
var pssOptions = &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthAuto, Hash: crypto.SHA256}

// RevocationLedger is the CRL storage the authority consults and appends to.
type RevocationLedger interface {
	Add(ctx context.Context, entry models.RevocationEntry) (bool, error)
	Contains(ctx context.Context, certID string) (bool, error)
	List(ctx context.Context) ([]models.RevocationEntry, error)
}

// Authority owns the CA signing key. It is safe for concurrent use; the key
// never changes after construction.
type Authority struct {
	key    *rsa.PrivateKey
	issuer string
	ledger RevocationLedger
	now    func() time.Time
	logger *logger.Logger
}

// New generates a fresh CA key of cfg.RSAKeySize bits.
func New(ledger RevocationLedger, cfg config.Security, log *logger.Logger) (*Authority, error) {
	key, err := GenerateKeyPair(keySize(cfg))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("func", "ca.New").Int("bits", key.N.BitLen()).Msg("generated CA key")
	return newAuthority(key, ledger, cfg, log), nil
}

// NewFromPEM builds an authority around an existing PEM private key.
func NewFromPEM(keyPEM []byte, ledger RevocationLedger, cfg config.Security, log *logger.Logger) (*Authority, error) {
	key, err := ParsePrivateKeyPEM(keyPEM)
	if err != nil {
		return nil, err
	}
	return newAuthority(key, ledger, cfg, log), nil
}

// LoadOrCreate loads the CA key stored at path, or generates one and writes
// it there with 0600 permissions when the file does not exist.
func LoadOrCreate(path string, ledger RevocationLedger, cfg config.Security, log *logger.Logger) (*Authority, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		log.Info().Str("func", "ca.LoadOrCreate").Str("path", path).Msg("loaded CA key")
		return NewFromPEM(data, ledger, cfg, log)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading CA key: %w", err)
	}

	authority, err := New(ledger, cfg, log)
	if err != nil {
		return nil, err
	}

	keyPEM, err := authority.PrivateKeyPEM()
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(path, keyPEM, 0o600); err != nil {
		return nil, fmt.Errorf("error writing CA key: %w", err)
	}

	log.Info().Str("func", "ca.LoadOrCreate").Str("path", path).Msg("created CA key")
	return authority, nil
}

func newAuthority(key *rsa.PrivateKey, ledger RevocationLedger, cfg config.Security, log *logger.Logger) *Authority {
	issuer := cfg.CAIssuer
	if issuer == "" {
		issuer = config.DefaultCAIssuer
	}

	return &Authority{
		key:    key,
		issuer: issuer,
		ledger: ledger,
		now:    time.Now,
		logger: log,
	}
}

func keySize(cfg config.Security) int {
	if cfg.RSAKeySize <= 0 {
		return config.DefaultRSAKeySize
	}
	return cfg.RSAKeySize
}

// Issuer returns the label written into issued certificates.
func (a *Authority) Issuer() string {
	return a.issuer
}

// Issue signs "username:publicKeyPEM" and returns a certificate with a fresh
// 128-bit id. The public key is not parsed.
func (a *Authority) Issue(username string, publicKeyPEM []byte) (models.Certificate, error) {
	certID, err := securecrypto.RandomHex(certIDSize)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("error generating certificate id: %w", err)
	}

	cert := models.Certificate{
		CertID:    certID,
		Username:  username,
		PublicKey: append([]byte(nil), publicKeyPEM...),
		Issuer:    a.issuer,
		IssuedAt:  a.now().UTC(),
	}

	digest := sha256.Sum256(cert.SignedPayload())
	cert.Signature, err = rsa.SignPSS(rand.Reader, a.key, crypto.SHA256, digest[:], pssOptions)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	return cert, nil
}

// Verify reports whether cert is unrevoked and carries a valid signature of
// this authority. A certificate on the CRL is rejected before any signature
// work. The error is non-nil only when the ledger cannot be read.
func (a *Authority) Verify(ctx context.Context, cert models.Certificate) (bool, error) {
	revoked, err := a.ledger.Contains(ctx, cert.CertID)
	if err != nil {
		return false, fmt.Errorf("error checking revocation list: %w", err)
	}
	if revoked {
		return false, nil
	}

	if len(cert.Signature) == 0 {
		return false, nil
	}

	digest := sha256.Sum256(cert.SignedPayload())
	return rsa.VerifyPSS(&a.key.PublicKey, crypto.SHA256, digest[:], cert.Signature, pssOptions) == nil, nil
}

// Revoke appends certID to the CRL. It returns false for an empty id or an
// id that is already revoked.
func (a *Authority) Revoke(ctx context.Context, certID, reason string) (bool, error) {
	if certID == "" {
		return false, nil
	}

	added, err := a.ledger.Add(ctx, models.RevocationEntry{
		CertID:    certID,
		RevokedAt: a.now().UTC(),
		Reason:    reason,
	})
	if err != nil {
		return false, fmt.Errorf("error adding revocation entry: %w", err)
	}

	if added {
		logger.FromContext(ctx).Info().Str("cert_id", certID).Str("reason", reason).Msg("certificate revoked")
	}
	return added, nil
}

// RevokedCertificates returns the CRL in revocation order.
func (a *Authority) RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error) {
	return a.ledger.List(ctx)
}

// PublicKeyPEM returns the CA public key in SubjectPublicKeyInfo PEM form.
func (a *Authority) PublicKeyPEM() ([]byte, error) {
	return MarshalPublicKeyPEM(&a.key.PublicKey)
}

// PrivateKeyPEM returns the CA private key in PKCS#8 PEM form.
func (a *Authority) PrivateKeyPEM() ([]byte, error) {
	return MarshalPrivateKeyPEM(a.key)
}
