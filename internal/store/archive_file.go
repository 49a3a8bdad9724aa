// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-backup/internal/logger"
)

// fileArchiveStore is the default [ArchiveStore]: one container file at a
// fixed path on the local filesystem.
type fileArchiveStore struct {
	path   string
	logger *logger.Logger
}

// NewFileArchiveStore constructs an [ArchiveStore] over the given file path.
func NewFileArchiveStore(path string, log *logger.Logger) ArchiveStore {
	return &fileArchiveStore{path: path, logger: log}
}

// Write implements [ArchiveStore]. Parent directories are created with owner
// permissions; the file itself is 0600 because, although the container is
// encrypted, there is no reason to expose it to other users.
func (s *fileArchiveStore) Write(ctx context.Context, container []byte) (string, error) {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create backup dir %s: %w", dir, err)
	}

	if err := os.WriteFile(s.path, container, 0o600); err != nil {
		return "", fmt.Errorf("write backup file %s: %w", s.path, err)
	}

	log.Debug().
		Str("func", "fileArchiveStore.Write").
		Str("path", s.path).
		Int("bytes", len(container)).
		Msg("backup file written")

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return s.path, nil
	}
	return abs, nil
}

// Read implements [ArchiveStore].
func (s *fileArchiveStore) Read(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, s.path)
		}
		return nil, fmt.Errorf("read backup file %s: %w", s.path, err)
	}

	log.Debug().
		Str("func", "fileArchiveStore.Read").
		Str("path", s.path).
		Int("bytes", len(data)).
		Msg("backup file read")

	return data, nil
}
