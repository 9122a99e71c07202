// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPBKDF2Iterations is the note-key work factor used when the
	// configuration does not set one.
	DefaultPBKDF2Iterations = 100_000

	// NoteKeySize is the length of a derived note key (AES-256).
	NoteKeySize = 32
)

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct {
	iterations int
}

// NewKeyDeriver returns a [KeyDeriver] using the given PBKDF2 iteration
// count. A non-positive count falls back to [DefaultPBKDF2Iterations].
func NewKeyDeriver(iterations int) KeyDeriver {
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}
	return &keyDeriver{iterations: iterations}
}

// DeriveVerifier implements [KeyDeriver].
func (k *keyDeriver) DeriveVerifier(salt []byte, password string) string {
	return saltedHash(salt, []byte(password))
}

// VerifyPassword implements [KeyDeriver].
func (k *keyDeriver) VerifyPassword(salt []byte, password, expected string) bool {
	return EqualHex(k.DeriveVerifier(salt, password), expected)
}

// DeriveNoteKey implements [KeyDeriver].
func (k *keyDeriver) DeriveNoteKey(password string, noteSalt []byte) []byte {
	return pbkdf2.Key([]byte(password), noteSalt, k.iterations, NoteKeySize, sha256.New)
}

// GenerateSalt implements [KeyDeriver].
func (k *keyDeriver) GenerateSalt(size int) ([]byte, error) {
	return RandomBytes(size)
}

// ComputeProof answers a challenge: the hex SHA-256 digest of the hex ZK
// verifier concatenated with the hex challenge string. Both the server and
// remote clients build proofs with it.
func ComputeProof(zkVerifierHex, challengeData string) string {
	return saltedHash([]byte(zkVerifierHex), []byte(challengeData))
}

// EqualHex compares two hex strings in constant time.
func EqualHex(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// RandomBytes reads size bytes from the OS CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSaltSize
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("error reading random bytes: %w", err)
	}
	return b, nil
}

// RandomHex returns size random bytes encoded as lowercase hex.
func RandomHex(size int) (string, error) {
	b, err := RandomBytes(size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func saltedHash(prefix, data []byte) string {
	h := sha256.New()
	h.Write(prefix)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
