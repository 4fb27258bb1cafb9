package config

import "errors"

// Validation errors returned by config validation when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty cache DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an email domain without a leading "@", or a negative
	// session duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrMissingServerSecrets indicates that the session signing key or the
	// password hashing key is empty. An empty signing key would let anyone
	// forge a logged-in cookie, so the server refuses to start.
	ErrMissingServerSecrets = errors.New("missing server secrets")
)
