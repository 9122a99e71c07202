// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned when an AES-GCM tag does not verify:
	// wrong key, wrong nonce, or tampered ciphertext.
	ErrAuthenticationFailure = errors.New("authentication failure: ciphertext integrity check failed")

	// ErrInvalidKeySize is returned when a note key is not 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidSaltSize is returned when a non-positive salt size is requested.
	ErrInvalidSaltSize = errors.New("invalid salt size")
)
