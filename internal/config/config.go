// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-vault-backup. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// The master password is deliberately absent: it is supplied at runtime
// (interactive prompt or the BW_PASSWORD process environment) and is never
// read from persisted configuration.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// log verbosity.
	App App `envPrefix:"APP_"`

	// Backup holds settings of the encrypted artifact itself: destination
	// path and the account to export.
	Backup Backup `envPrefix:"BACKUP_"`

	// Vault holds settings for invoking the external vault-management
	// program (the Bitwarden CLI).
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the local backup catalog.
	Storage Storage `envPrefix:"STORAGE_"`

	// Restore holds settings that only affect the restore operation.
	Restore Restore `envPrefix:"RESTORE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the build banner.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Verbose raises the log level from Info to Debug.
	// Env: APP_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// Backup holds settings of the encrypted backup artifact.
type Backup struct {
	// FilePath is where the encrypted container is written and read back.
	// When empty, a per-user default under os.UserConfigDir is used.
	// Env: BACKUP_FILE
	FilePath string `env:"FILE"`

	// Email is the vault account to back up. Required for the backup
	// operation, unused by restore.
	// Env: BACKUP_EMAIL
	Email string `env:"EMAIL"`
}

// Vault holds settings for the external vault-management program.
type Vault struct {
	// Binary is the name or path of the vault CLI executable.
	// Env: VAULT_BINARY
	Binary string `env:"BINARY"`

	// CommandTimeout bounds each individual vault CLI invocation
	// (login, unlock, export), e.g. "2m".
	// Env: VAULT_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`
}

// Storage holds configuration for the local backup catalog.
type Storage struct {
	// CatalogPath is the SQLite database file recording backup history.
	// When empty, it defaults to catalog.db next to the backup artifact.
	// Env: STORAGE_CATALOG_PATH
	CatalogPath string `env:"CATALOG_PATH"`
}

// Restore holds settings that only affect the restore operation.
type Restore struct {
	// CopyToClipboard places the decrypted export on the system clipboard
	// instead of writing it to stdout.
	// Env: RESTORE_COPY
	CopyToClipboard bool `env:"COPY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags (args are the arguments after the subcommand)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
