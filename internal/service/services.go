package service

import (
	"github.com/MKhiriev/go-vault-backup/internal/adapter"
	"github.com/MKhiriev/go-vault-backup/internal/crypto"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/internal/store"
)

type ClientServices struct {
	BackupService BackupService
}

func NewClientServices(vault adapter.VaultCLI, storages *store.ClientStorages, log *logger.Logger) *ClientServices {
	return &ClientServices{
		BackupService: NewBackupService(crypto.NewSealer(), vault, storages, log),
	}
}
