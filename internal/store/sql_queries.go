// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-backup/models"
)

const backupsTable = "backups"

var backupColumns = []string{
	"id",
	"email",
	"file_path",
	"size_bytes",
	"sha256",
	"created_at",
}

// buildInsertBackupQuery builds the catalog INSERT for one backup record.
// SQLite uses ? placeholders, squirrel's default.
func buildInsertBackupQuery(rec models.BackupRecord) (string, []interface{}, error) {
	return sq.Insert(backupsTable).
		Columns(backupColumns...).
		Values(rec.ID, rec.Email, rec.FilePath, rec.SizeBytes, rec.SHA256, rec.CreatedAt).
		ToSql()
}

// buildSelectBackupsQuery builds the history listing, newest first.
func buildSelectBackupsQuery() (string, []interface{}, error) {
	return sq.Select(backupColumns...).
		From(backupsTable).
		OrderBy("created_at DESC").
		ToSql()
}
