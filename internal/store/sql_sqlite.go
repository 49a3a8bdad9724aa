package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-backup/internal/config"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
)

func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.CatalogPath); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating catalog file")
		return nil, fmt.Errorf("error creating catalog file")
	}

	conn, err := sql.Open("sqlite3", cfg.CatalogPath)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to catalog successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error migrating catalog")
		return nil, err
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create, including the parent directory
		if dir := filepath.Dir(dbFile); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
				return fmt.Errorf("error creating DB dir: %w", mkErr)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
