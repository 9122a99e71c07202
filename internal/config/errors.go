package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidSecurityConfigs indicates a non-positive or too weak
	// cryptographic parameter.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdminConfigs indicates an admin user without password or
	// token signing key.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
