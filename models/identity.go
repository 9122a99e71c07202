// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Verifier is a salted SHA-256 password verifier. Hash is the lowercase hex
// digest of Salt followed by the UTF-8 password bytes.
type Verifier struct {
	Salt []byte `json:"salt"`
	Hash string `json:"hash"`
}

// Identity is the persisted record of a registered user.
//
// The password itself is never stored: AuthVerifier gates password logins,
// ZKVerifier feeds the challenge-response protocol and NoteSalt is the PBKDF2
// salt for the per-user note key. All three salts are generated freshly for
// every identity.
type Identity struct {
	// Username is the unique, case-sensitive identity key.
	Username string `json:"username"`

	// AuthVerifier holds the 32-byte auth salt and its verifier hash.
	AuthVerifier Verifier `json:"auth_verifier"`

	// NoteSalt is the 32-byte salt used to derive the note key.
	NoteSalt []byte `json:"note_salt"`

	// ZKVerifier holds the 16-byte challenge salt and its verifier hash.
	ZKVerifier Verifier `json:"zk_verifier"`

	// Certificate is nil until the certificate authority has issued one.
	Certificate *Certificate `json:"certificate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// HasCertificate reports whether a certificate is attached to the identity.
func (i Identity) HasCertificate() bool {
	return i.Certificate != nil
}

// UserInfo is the public view of an identity returned to administrators.
type UserInfo struct {
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `json:"is_active"`
	HasCertificate bool      `json:"has_certificate"`
	CertID         string    `json:"cert_id,omitempty"`
	Revoked        bool      `json:"revoked"`
}
