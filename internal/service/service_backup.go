// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-backup/internal/adapter"
	"github.com/MKhiriev/go-vault-backup/internal/crypto"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/internal/store"
	"github.com/MKhiriev/go-vault-backup/internal/utils"
	"github.com/MKhiriev/go-vault-backup/models"
)

type backupService struct {
	sealer  crypto.Sealer
	vault   adapter.VaultCLI
	archive store.ArchiveStore
	catalog store.CatalogRepository
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewBackupService wires a [BackupService] from its collaborators.
func NewBackupService(sealer crypto.Sealer, vault adapter.VaultCLI, storages *store.ClientStorages, log *logger.Logger) BackupService {
	return &backupService{
		sealer:  sealer,
		vault:   vault,
		archive: storages.Archive,
		catalog: storages.Catalog,
		uuid:    utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// Backup implements [BackupService]. Control flow: login (tolerant) →
// unlock → export → seal → write → record. The plaintext export lives only
// between Export and Seal and is wiped as soon as the container exists.
func (s *backupService) Backup(ctx context.Context, email, password string) (models.BackupRecord, error) {
	if email == "" {
		return models.BackupRecord{}, ErrEmailRequired
	}

	s.vault.Login(ctx, email, password)

	session, err := s.vault.Unlock(ctx, password)
	if err != nil {
		return models.BackupRecord{}, err
	}

	payload, err := s.vault.Export(ctx, password, session)
	if err != nil {
		return models.BackupRecord{}, err
	}

	container, err := s.sealer.Seal(password, payload)
	crypto.Wipe(payload)
	if err != nil {
		return models.BackupRecord{}, err
	}

	path, err := s.archive.Write(ctx, container)
	if err != nil {
		return models.BackupRecord{}, err
	}

	rec := models.BackupRecord{
		ID:        s.uuid.Generate(),
		Email:     email,
		FilePath:  path,
		SizeBytes: int64(len(container)),
		SHA256:    utils.Sum256Hex(container),
		CreatedAt: time.Now().UTC(),
	}

	// The artifact is the source of truth; a catalog hiccup must not fail
	// a backup that is already safely on disk.
	if err = s.catalog.Record(ctx, rec); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "backupService.Backup").
			Str("backup_id", rec.ID).
			Msg("backup written but not recorded in catalog")
	}

	s.logger.Info().
		Str("func", "backupService.Backup").
		Str("path", rec.FilePath).
		Int64("bytes", rec.SizeBytes).
		Msg("encrypted backup saved")

	return rec, nil
}

// Restore implements [BackupService].
func (s *backupService) Restore(ctx context.Context, password string) ([]byte, error) {
	container, err := s.archive.Read(ctx)
	if err != nil {
		return nil, err
	}

	return s.sealer.Open(password, container)
}

// History implements [BackupService].
func (s *backupService) History(ctx context.Context) ([]models.BackupRecord, error) {
	return s.catalog.List(ctx)
}
