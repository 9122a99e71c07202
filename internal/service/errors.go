package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnknownUser and ErrInvalidCredentials are kept apart so callers can
	// decide whether to reveal which one happened. The HTTP layer does not.
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")

	ErrCertificateInvalidOrRevoked = errors.New("certificate is invalid or revoked")
	ErrCertificateAlreadyIssued    = errors.New("certificate already issued")
	ErrCertificateNotFound         = errors.New("no certificate issued for user")

	ErrChallengeExpired     = errors.New("challenge expired")
	ErrChallengeAlreadyUsed = errors.New("challenge already used")

	ErrNoteNotFound = errors.New("note not found")

	ErrAdminDisabled           = errors.New("admin API is disabled")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
