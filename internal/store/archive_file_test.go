package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileArchiveStore_WriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "backup.json.enc")
	s := NewFileArchiveStore(path, logger.Nop())
	ctx := context.Background()

	container := []byte("opaque encrypted container bytes")

	written, err := s.Write(ctx, container)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(written))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, container, got)
}

func TestFileArchiveStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	path := filepath.Join(t.TempDir(), "backup.json.enc")
	s := NewFileArchiveStore(path, logger.Nop())

	_, err := s.Write(context.Background(), []byte("bytes"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileArchiveStore_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json.enc")
	s := NewFileArchiveStore(path, logger.Nop())
	ctx := context.Background()

	_, err := s.Write(ctx, []byte("first"))
	require.NoError(t, err)
	_, err = s.Write(ctx, []byte("second, longer container"))
	require.NoError(t, err)

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second, longer container"), got)
}

func TestFileArchiveStore_ReadMissing(t *testing.T) {
	s := NewFileArchiveStore(filepath.Join(t.TempDir(), "absent.enc"), logger.Nop())

	_, err := s.Read(context.Background())
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}
