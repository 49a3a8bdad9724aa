package store

import (
	"context"

	"github.com/MKhiriev/go-vault-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArchiveStore persists the encrypted container file. It handles only
// already-encrypted bytes: plaintext never reaches this layer.
type ArchiveStore interface {
	// Write stores the container at the configured destination, creating
	// parent directories as needed, and returns the absolute path written.
	// The file is owner-readable only.
	Write(ctx context.Context, container []byte) (string, error)

	// Read loads the complete container back. Returns ErrArchiveNotFound
	// when no backup exists at the configured path.
	Read(ctx context.Context) ([]byte, error)
}

// CatalogRepository records metadata about successfully written backups in
// the local history catalog.
type CatalogRepository interface {
	// Record inserts one backup record.
	Record(ctx context.Context, rec models.BackupRecord) error

	// List returns all records, newest first.
	List(ctx context.Context) ([]models.BackupRecord, error)
}
