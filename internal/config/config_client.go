package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither environment, flags, nor the JSON file set a
// value. The artifact name matches the original backup layout so archives
// stay where existing installations expect them.
const (
	defaultVaultBinary    = "bw"
	defaultCommandTimeout = 2 * time.Minute
	defaultArtifactName   = "backup.json.enc"
	defaultCatalogName    = "catalog.db"
	defaultConfigSubdir   = "go-vault-backup"
)

// ClientApp holds application-level settings consumed by the wiring layer.
type ClientApp struct {
	// Version is the semantic version of the running binary.
	Version string
	// Verbose raises logging from Info to Debug.
	Verbose bool
}

// ClientBackup holds artifact settings after defaulting.
type ClientBackup struct {
	// FilePath is the resolved destination of the encrypted container.
	FilePath string
	// Email is the vault account to export (backup only).
	Email string
}

// ClientVault holds the external vault program settings after defaulting.
type ClientVault struct {
	// Binary is the vault CLI executable.
	Binary string
	// CommandTimeout bounds each CLI invocation.
	CommandTimeout time.Duration
}

// ClientStorage holds catalog settings after defaulting.
type ClientStorage struct {
	// CatalogPath is the SQLite file recording backup history.
	CatalogPath string
}

// ClientRestore holds restore-only behavior settings.
type ClientRestore struct {
	// CopyToClipboard redirects decrypted output to the clipboard.
	CopyToClipboard bool
}

// ClientConfig is the defaulted, validated configuration view the rest of
// the application consumes.
type ClientConfig struct {
	App     ClientApp
	Backup  ClientBackup
	Vault   ClientVault
	Storage ClientStorage
	Restore ClientRestore
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration, applying defaults for anything unset.
//
// args is the command line after the subcommand.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			Verbose: cfg.App.Verbose,
		},
		Backup: ClientBackup{
			FilePath: cfg.Backup.FilePath,
			Email:    cfg.Backup.Email,
		},
		Vault: ClientVault{
			Binary:         cfg.Vault.Binary,
			CommandTimeout: cfg.Vault.CommandTimeout,
		},
		Storage: ClientStorage{
			CatalogPath: cfg.Storage.CatalogPath,
		},
		Restore: ClientRestore{
			CopyToClipboard: cfg.Restore.CopyToClipboard,
		},
	}

	if err := clientCfg.applyDefaults(); err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills unset fields. The artifact default lives under the
// per-user config directory; the catalog defaults to sitting next to it.
func (cfg *ClientConfig) applyDefaults() error {
	if cfg.Vault.Binary == "" {
		cfg.Vault.Binary = defaultVaultBinary
	}
	if cfg.Vault.CommandTimeout == 0 {
		cfg.Vault.CommandTimeout = defaultCommandTimeout
	}

	if cfg.Backup.FilePath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("error resolving user config dir: %w", err)
		}
		cfg.Backup.FilePath = filepath.Join(base, defaultConfigSubdir, defaultArtifactName)
	}

	if cfg.Storage.CatalogPath == "" {
		cfg.Storage.CatalogPath = filepath.Join(filepath.Dir(cfg.Backup.FilePath), defaultCatalogName)
	}

	return nil
}
