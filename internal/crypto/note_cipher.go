// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
)

// NonceSize is the AES-GCM nonce length (96 bits).
const NonceSize = 12

// noteCipher is the private implementation of [Cipher].
type noteCipher struct{}

// NewNoteCipher returns an AES-256-GCM [Cipher].
func NewNoteCipher() Cipher {
	return &noteCipher{}
}

// Encrypt implements [Cipher]. A fresh nonce is drawn for every call, so the
// same plaintext never produces the same ciphertext twice.
func (c *noteCipher) Encrypt(key []byte, plaintext string) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce, err := RandomBytes(gcm.NonceSize())
	if err != nil {
		return nil, nil, fmt.Errorf("error generating nonce: %w", err)
	}

	return gcm.Seal(nil, nonce, []byte(plaintext), nil), nonce, nil
}

// Decrypt implements [Cipher].
func (c *noteCipher) Decrypt(key, ciphertext, nonce []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// gcm.Open panics on a nonce of the wrong length
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: nonce has %d bytes", ErrAuthenticationFailure, len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != NoteKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), NoteKeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher creation failed: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("GCM creation failed: %w", err)
	}
	return gcm, nil
}

// EncodeBase64 encodes b with the standard padded alphabet.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 is the inverse of [EncodeBase64].
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	return b, nil
}
