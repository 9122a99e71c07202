package ca

import "errors"

var (
	// ErrKeyGeneration is returned when an RSA key pair cannot be generated.
	// The server treats it as fatal at startup.
	ErrKeyGeneration = errors.New("rsa key generation failed")

	// ErrMalformedKey is returned when PEM input does not hold a usable RSA key.
	ErrMalformedKey = errors.New("malformed rsa key")

	// ErrSigning is returned when the authority fails to sign a certificate.
	ErrSigning = errors.New("certificate signing failed")
)
