package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Backup.FilePath)
	assert.Empty(t, cfg.Backup.Email)
	assert.Empty(t, cfg.Vault.Binary)
	assert.Zero(t, cfg.Vault.CommandTimeout)
	assert.False(t, cfg.App.Verbose)
	assert.False(t, cfg.Restore.CopyToClipboard)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-file", "/tmp/vault.enc",
		"-email", "user@example.com",
		"-bw", "bw-beta",
		"-command-timeout", "45s",
		"-catalog", "/tmp/history.db",
		"-copy",
		"-v",
		"-c", "/etc/vaultbackup.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vault.enc", cfg.Backup.FilePath)
	assert.Equal(t, "user@example.com", cfg.Backup.Email)
	assert.Equal(t, "bw-beta", cfg.Vault.Binary)
	assert.Equal(t, 45*time.Second, cfg.Vault.CommandTimeout)
	assert.Equal(t, "/tmp/history.db", cfg.Storage.CatalogPath)
	assert.True(t, cfg.Restore.CopyToClipboard)
	assert.True(t, cfg.App.Verbose)
	assert.Equal(t, "/etc/vaultbackup.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/tmp/alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alias.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlagIsError(t *testing.T) {
	_, err := ParseFlags([]string{"-definitely-unknown"})
	require.Error(t, err)
}
