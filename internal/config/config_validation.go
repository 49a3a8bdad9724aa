// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Intentionally permissive: defaults are applied later on the client view,
// so an empty structured config is valid here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Vault.Binary == "" || cfg.Vault.CommandTimeout <= 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Backup.FilePath == "" {
		return ErrInvalidBackupConfigs
	}

	if cfg.Storage.CatalogPath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
