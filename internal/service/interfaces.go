// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the SecurNote identity core on top of the
// stores, the crypto primitives and the certificate authority: password
// authentication, challenge-response login, certificate issuance and
// revocation, encrypted notes and the administrator session.
//
// [IdentityFacade] is the single entry point used by the transports.
package service

import (
	"context"

	"github.com/MKhiriev/go-securnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CertificateAuthority is the part of ca.Authority the services depend on.
type CertificateAuthority interface {
	Issue(username string, publicKeyPEM []byte) (models.Certificate, error)
	Verify(ctx context.Context, cert models.Certificate) (bool, error)
	Revoke(ctx context.Context, certID, reason string) (bool, error)
	RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error)
	PublicKeyPEM() ([]byte, error)
}

// AuthService owns password verification and note-key derivation.
type AuthService interface {
	// CreateIdentity builds a new, unsaved identity with fresh salts.
	CreateIdentity(ctx context.Context, username, password string) (models.Identity, error)
	// Authenticate checks the password and returns the 32-byte note key.
	Authenticate(ctx context.Context, username, password string) ([]byte, error)
	GetIdentity(ctx context.Context, username string) (models.Identity, error)
}

// ChallengeAuthService runs the salted-hash challenge-response login.
type ChallengeAuthService interface {
	CreateChallenge(ctx context.Context, username string) (models.ChallengeParams, error)
	ComputeProof(ctx context.Context, username, password, challengeData string) (string, error)
	VerifyProof(ctx context.Context, username, challengeData, proof string) (bool, error)
	// Authenticate runs the whole protocol locally for a password.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	// SweepExpired deletes challenges older than the TTL, used or not.
	SweepExpired(ctx context.Context) (int, error)
}

// CertificateService binds identities to certificates and checks access.
type CertificateService interface {
	IssueForIdentity(ctx context.Context, identity models.Identity) (models.Identity, error)
	// IsAccessValid is false for unknown users, missing, revoked or forged
	// certificates. The error is reserved for storage failures.
	IsAccessValid(ctx context.Context, username string) (bool, error)
	Revoke(ctx context.Context, username, reason string) (bool, error)
	Certificate(ctx context.Context, username string) (models.Certificate, error)
	RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error)
	AuthorityPublicKey() ([]byte, error)
}

// NoteService encrypts notes under the caller's note key. Every call is
// refused with [ErrCertificateInvalidOrRevoked] when access is not valid.
type NoteService interface {
	Create(ctx context.Context, username string, note models.NoteRequest, key []byte) (string, error)
	// List returns decrypted titles only, newest first.
	List(ctx context.Context, username string, key []byte) ([]models.PlainNote, error)
	Get(ctx context.Context, username, noteID string, key []byte) (models.PlainNote, error)
	Delete(ctx context.Context, username, noteID string) (bool, error)
}

// AdminService authenticates the configured administrator and issues the
// bearer tokens of the admin API.
type AdminService interface {
	Enabled() bool
	Login(ctx context.Context, username, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IdentityFacade is the upward interface of the identity core. Every
// operation leaves a best-effort entry in the activity log.
type IdentityFacade interface {
	// CreateIdentity registers username and returns its new certificate.
	CreateIdentity(ctx context.Context, username, password string) (models.Certificate, error)
	Authenticate(ctx context.Context, username, password string) ([]byte, error)
	AuthenticateChallenge(ctx context.Context, username, password string) (bool, error)
	IsAccessValid(ctx context.Context, username string) (bool, error)
	Revoke(ctx context.Context, username, reason string) (bool, error)

	// Login returns the note key only when the password is right and the
	// certificate is valid.
	Login(ctx context.Context, username, password string) ([]byte, error)
	// ChallengeLogin authenticates through the challenge protocol, then
	// releases the note key under the same access check as Login.
	ChallengeLogin(ctx context.Context, username, password string) ([]byte, error)
	CreateChallenge(ctx context.Context, username string) (models.ChallengeParams, error)
	VerifyProof(ctx context.Context, username, challengeData, proof string) (bool, error)

	Certificate(ctx context.Context, username string) (models.Certificate, error)
	// EnsureCertificate issues a certificate for a stored identity without one.
	EnsureCertificate(ctx context.Context, username string) (models.Certificate, error)
	UserInfo(ctx context.Context, username string) (models.UserInfo, error)
	RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error)
	AuthorityPublicKey() ([]byte, error)

	SweepExpiredChallenges(ctx context.Context) (int, error)
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityRecord, error)
	UserActivity(ctx context.Context, username string, limit int) ([]models.ActivityRecord, error)
}
