package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 1-64 bytes without ':' or control characters")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrEmptyTitle       = errors.New("note title is required")
	ErrTitleTooLong     = errors.New("note title is too long")
	ErrContentTooLong   = errors.New("note content is too long")
	ErrInvalidChallenge = errors.New("invalid challenge")
	ErrInvalidProof     = errors.New("invalid proof")
	ErrReasonTooLong    = errors.New("revocation reason is too long")
)
