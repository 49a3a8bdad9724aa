package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) CatalogRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewCatalogRepository(storeDB, logger.Nop())
}

func testRecord(created time.Time) models.BackupRecord {
	return models.BackupRecord{
		ID:        "0190e2c4-0000-7000-8000-000000000001",
		Email:     "user@example.com",
		FilePath:  "/srv/backups/vault.enc",
		SizeBytes: 2048,
		SHA256:    "deadbeef",
		CreatedAt: created,
	}
}

func TestCatalogRepository_Record_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	rec := testRecord(time.Now())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO backups")).
		WithArgs(rec.ID, rec.Email, rec.FilePath, rec.SizeBytes, rec.SHA256, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Record(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_Record_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO backups")).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Record(context.Background(), testRecord(time.Now()))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCatalogRepository_Record_NoRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO backups")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Record(context.Background(), testRecord(time.Now()))
	assert.ErrorIs(t, err, ErrRecordNotSaved)
}

func TestCatalogRepository_List_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	newest := time.Now().Truncate(time.Second)
	oldest := newest.Add(-24 * time.Hour)

	rows := sqlmock.NewRows(backupColumns).
		AddRow("id-2", "user@example.com", "/srv/b2.enc", int64(200), "cafe", newest).
		AddRow("id-1", "user@example.com", "/srv/b1.enc", int64(100), "beef", oldest)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, file_path, size_bytes, sha256, created_at FROM backups")).
		WillReturnRows(rows)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, newest, records[0].CreatedAt)
	assert.Equal(t, int64(100), records[1].SizeBytes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_List_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnRows(sqlmock.NewRows(backupColumns))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCatalogRepository_List_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnError(errors.New("no such table: backups"))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCatalogRepository_List_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows(backupColumns).
		AddRow("id-1", "user@example.com", "/srv/b1.enc", "not-a-number", "beef", "not-a-time")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
