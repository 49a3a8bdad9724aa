package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Backup.FilePath)
	assert.Empty(t, cfg.Vault.Binary)
	assert.Zero(t, cfg.Vault.CommandTimeout)
}

func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("APP_VERBOSE", "true")
	t.Setenv("BACKUP_FILE", "/tmp/backup.json.enc")
	t.Setenv("BACKUP_EMAIL", "user@example.com")
	t.Setenv("VAULT_BINARY", "/usr/local/bin/bw")
	t.Setenv("VAULT_COMMAND_TIMEOUT", "90s")
	t.Setenv("STORAGE_CATALOG_PATH", "/tmp/catalog.db")
	t.Setenv("RESTORE_COPY", "true")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.True(t, cfg.App.Verbose)
	assert.Equal(t, "/tmp/backup.json.enc", cfg.Backup.FilePath)
	assert.Equal(t, "user@example.com", cfg.Backup.Email)
	assert.Equal(t, "/usr/local/bin/bw", cfg.Vault.Binary)
	assert.Equal(t, 90*time.Second, cfg.Vault.CommandTimeout)
	assert.Equal(t, "/tmp/catalog.db", cfg.Storage.CatalogPath)
	assert.True(t, cfg.Restore.CopyToClipboard)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("VAULT_COMMAND_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
