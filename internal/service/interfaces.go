package service

import (
	"context"

	"github.com/MKhiriev/go-vault-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_service_mock.go -package=mock

// BackupService orchestrates the full backup and restore flows on top of
// the vault CLI adapter, the encryption core, and the stores. It is the API
// the command layer talks to.
type BackupService interface {
	// Backup exports the account's vault via the external program, seals
	// the plaintext export immediately, writes the container file, and
	// records the backup in the catalog. The plaintext never touches
	// persistent storage. Returns the catalog record of the new backup.
	Backup(ctx context.Context, email, password string) (models.BackupRecord, error)

	// Restore reads the container file, opens it with the password, and
	// returns the decrypted export bytes to the caller. Core errors pass
	// through unchanged: crypto.ErrFormat for a foreign/truncated file,
	// crypto.ErrAuthentication whenever the password is wrong or the file
	// was altered, deliberately indistinguishable.
	Restore(ctx context.Context, password string) ([]byte, error)

	// History lists recorded backups, newest first.
	History(ctx context.Context) ([]models.BackupRecord, error)
}
