package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app":     {"version": "2.0.0", "verbose": true},
		"backup":  {"file": "/srv/backups/vault.enc", "email": "user@example.com"},
		"vault":   {"binary": "bw", "command_timeout": "3m"},
		"storage": {"catalog_path": "/srv/backups/catalog.db"},
		"restore": {"copy": true}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.True(t, cfg.App.Verbose)
	assert.Equal(t, "/srv/backups/vault.enc", cfg.Backup.FilePath)
	assert.Equal(t, "user@example.com", cfg.Backup.Email)
	assert.Equal(t, "bw", cfg.Vault.Binary)
	assert.Equal(t, 3*time.Minute, cfg.Vault.CommandTimeout)
	assert.Equal(t, "/srv/backups/catalog.db", cfg.Storage.CatalogPath)
	assert.True(t, cfg.Restore.CopyToClipboard)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also arrive as nanosecond numbers.
	path := writeTempJSON(t, `{"vault": {"command_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Vault.CommandTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"backup": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(raw))
	assert.Equal(t, d, back)
}
