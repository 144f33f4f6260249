package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was provided.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN for a SQL backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownStorageDriver indicates an unsupported storage driver name.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	// ErrUnsupportedConfigFile indicates a config file with an unknown extension.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
