package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructuredConfig_MergesEnvOverFlags(t *testing.T) {
	t.Setenv("BACKUP_FILE", "/from/env.enc")

	cfg, err := GetStructuredConfig([]string{"-file", "/from/flags.enc", "-email", "user@example.com"})
	require.NoError(t, err)

	// Environment is the first source and wins for fields it sets.
	assert.Equal(t, "/from/env.enc", cfg.Backup.FilePath)
	// Flags fill everything the environment left empty.
	assert.Equal(t, "user@example.com", cfg.Backup.Email)
}

func TestGetStructuredConfig_JSONFillsRemaining(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"vault": {"binary": "bw-json", "command_timeout": "4m"},
		"backup": {"file": "/from/json.enc"}
	}`), 0o600))

	cfg, err := GetStructuredConfig([]string{"-c", path, "-file", "/from/flags.enc"})
	require.NoError(t, err)

	assert.Equal(t, "/from/flags.enc", cfg.Backup.FilePath, "flags beat the JSON file")
	assert.Equal(t, "bw-json", cfg.Vault.Binary)
	assert.Equal(t, 4*time.Minute, cfg.Vault.CommandTimeout)
}

func TestGetStructuredConfig_BadFlagSurfacesError(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-no-such-flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestGetClientConfig_AppliesDefaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultVaultBinary, cfg.Vault.Binary)
	assert.Equal(t, defaultCommandTimeout, cfg.Vault.CommandTimeout)
	assert.NotEmpty(t, cfg.Backup.FilePath)
	assert.Equal(t, defaultArtifactName, filepath.Base(cfg.Backup.FilePath))
	assert.Equal(t,
		filepath.Join(filepath.Dir(cfg.Backup.FilePath), defaultCatalogName),
		cfg.Storage.CatalogPath,
		"catalog defaults to sitting next to the artifact")
}

func TestGetClientConfig_ExplicitValuesKept(t *testing.T) {
	cfg, err := GetClientConfig([]string{
		"-file", "/srv/vault.enc",
		"-bw", "bw-beta",
		"-command-timeout", "30s",
		"-catalog", "/srv/history.db",
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/vault.enc", cfg.Backup.FilePath)
	assert.Equal(t, "bw-beta", cfg.Vault.Binary)
	assert.Equal(t, 30*time.Second, cfg.Vault.CommandTimeout)
	assert.Equal(t, "/srv/history.db", cfg.Storage.CatalogPath)
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Backup:  ClientBackup{FilePath: "/tmp/a.enc"},
		Vault:   ClientVault{Binary: "bw", CommandTimeout: time.Minute},
		Storage: ClientStorage{CatalogPath: "/tmp/catalog.db"},
	}
	require.NoError(t, valid.validate())

	noVault := *valid
	noVault.Vault.Binary = ""
	assert.ErrorIs(t, noVault.validate(), ErrInvalidVaultConfigs)

	noTimeout := *valid
	noTimeout.Vault.CommandTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidVaultConfigs)

	noFile := *valid
	noFile.Backup.FilePath = ""
	assert.ErrorIs(t, noFile.validate(), ErrInvalidBackupConfigs)

	noCatalog := *valid
	noCatalog.Storage.CatalogPath = ""
	assert.ErrorIs(t, noCatalog.validate(), ErrInvalidStorageConfigs)
}
