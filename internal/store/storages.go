package store

import (
	"context"

	"github.com/MKhiriev/go-vault-backup/internal/config"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
)

// ClientStorages bundles the persistence backends the service layer needs:
// the archive file store and the backup history catalog.
type ClientStorages struct {
	Archive ArchiveStore
	Catalog CatalogRepository
}

// NewClientStorages opens the catalog database (running migrations) and
// wires both stores.
func NewClientStorages(ctx context.Context, backupCfg config.ClientBackup, storageCfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, storageCfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Archive: NewFileArchiveStore(backupCfg.FilePath, log),
		Catalog: NewCatalogRepository(db, log),
	}, nil
}
