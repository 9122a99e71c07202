package client

import "errors"

var (
	// ErrUsage is returned when the command line cannot be understood. The
	// usage text has already been printed.
	ErrUsage = errors.New("invalid usage")

	ErrUsernameRequired = errors.New("username is required (-u)")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrAccessDenied     = errors.New("access denied")
)
