package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid external vault-program
	// settings (for example, an empty binary or non-positive timeout).
	ErrInvalidVaultConfigs = errors.New("invalid vault CLI configuration")
	// ErrInvalidBackupConfigs indicates invalid artifact settings
	// (for example, the destination path could not be resolved).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidStorageConfigs indicates invalid catalog settings
	// (for example, an unresolved catalog path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
