// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/models"
)

type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] over the given DB.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *catalogRepository) Record(ctx context.Context, rec models.BackupRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBackupQuery(rec)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Record").
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Record").
			Str("backup_id", rec.ID).
			Msg("failed to insert backup record")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotSaved
	}

	return nil
}

func (c *catalogRepository) List(ctx context.Context) ([]models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBackupsQuery()
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.List").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.List").
			Msg("failed to query backup records")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.BackupRecord
	for rows.Next() {
		var rec models.BackupRecord
		scanErr := rows.Scan(
			&rec.ID,
			&rec.Email,
			&rec.FilePath,
			&rec.SizeBytes,
			&rec.SHA256,
			&rec.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "catalogRepository.List").
				Msg("failed to scan backup record row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return records, nil
}
