package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is].
var (
	// ErrStorageUnavailable wraps every failure of the underlying database.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrRecordCorrupted is returned when a stored row fails validation on
	// read, e.g. a certificate column that no longer parses.
	ErrRecordCorrupted = errors.New("stored record is corrupted")

	// ErrIdentityExists is returned by Save when the username is taken.
	ErrIdentityExists = errors.New("identity already exists")

	// ErrIdentityNotFound is returned when no identity has the username.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrChallengeNotFound is returned when no challenge matches.
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrNoteNotFound is returned when the note does not exist for the user.
	ErrNoteNotFound = errors.New("note not found")
)

// Low-level SQL errors, always wrapped together with [ErrStorageUnavailable].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when result rows cannot be scanned.
	ErrScanningRows = errors.New("failed to scan rows")
)
