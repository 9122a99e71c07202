// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the symmetric primitives of the identity core:
// password verifiers, note-key derivation, challenge proofs and the AES-GCM
// note cipher. Everything here is pure and safe for concurrent use.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns passwords into verifiers, proofs and note keys.
//
// Derivation scheme:
//
//	verifier = hex(SHA-256(salt || password))
//	noteKey  = PBKDF2-HMAC-SHA256(password, noteSalt, iterations, 32)
//	proof    = hex(SHA-256(zkVerifier || challenge))
type KeyDeriver interface {
	// DeriveVerifier returns the hex SHA-256 digest of salt followed by password.
	DeriveVerifier(salt []byte, password string) string

	// VerifyPassword recomputes the verifier and compares it with expected in
	// constant time.
	VerifyPassword(salt []byte, password, expected string) bool

	// DeriveNoteKey derives the 32-byte note key from password and noteSalt.
	DeriveNoteKey(password string, noteSalt []byte) []byte

	// GenerateSalt returns size bytes from the OS CSPRNG.
	GenerateSalt(size int) ([]byte, error)
}

// Cipher seals and opens note fields.
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce and returns
	// the ciphertext (tag included) and that nonce.
	Encrypt(key []byte, plaintext string) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext. Any integrity failure yields
	// [ErrAuthenticationFailure].
	Decrypt(key, ciphertext, nonce []byte) (string, error)
}
