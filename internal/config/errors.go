package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidCoreAPIConfigs indicates missing CoreAPI service account
	// settings (server URL, username or password).
	ErrInvalidCoreAPIConfigs = errors.New("invalid coreapi configuration")
	// ErrInvalidAdminConfigs indicates missing administrative identity
	// settings used by user authorization (login, password, role name or a
	// server to authenticate against).
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidStoreConfigs indicates an unusable config store location
	// (empty dotenv path or token key).
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
)
