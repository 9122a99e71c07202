package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("invalid credentials or access revoked")
	ErrChallengeExpired     = errors.New("challenge expired")
	ErrChallengeAlreadyUsed = errors.New("challenge already used")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrServiceUnavailable   = errors.New("server storage unavailable")
	ErrInternalServerError  = errors.New("internal server error")

	// ErrNoCredentials is returned by authenticated calls made before
	// SetCredentials.
	ErrNoCredentials = errors.New("no credentials set")
)
