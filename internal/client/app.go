// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-vault-backup/internal/config"
	"github.com/MKhiriev/go-vault-backup/internal/crypto"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/internal/service"
	"github.com/atotto/clipboard"
)

// Operation names accepted by [App.Run].
const (
	OpBackup  = "backup"
	OpRestore = "restore"
	OpHistory = "history"
)

// passwordEnvVar supplies the master password non-interactively. It matches
// the variable the vault CLI adapter hands to the external program.
const passwordEnvVar = "BW_PASSWORD"

// passwordPrompter is the interactive fallback when passwordEnvVar is unset.
type passwordPrompter interface {
	PromptPassword(title string) (string, error)
}

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	prompt   passwordPrompter
	logger   *logger.Logger

	// stdout is the destination of restore and history output. A field so
	// tests can capture it.
	stdout io.Writer
}

func NewApp(cfg *config.ClientConfig, services *service.ClientServices, prompt passwordPrompter, log *logger.Logger) (*App, error) {
	return &App{
		cfg:      cfg,
		services: services,
		prompt:   prompt,
		logger:   log,
		stdout:   os.Stdout,
	}, nil
}

// Run executes one operation and returns. Unlike a long-lived client, every
// invocation is a complete session: resolve password, do the work, exit.
func (a *App) Run(operation string) error {
	ctx := a.logger.WithContext(context.Background())

	switch operation {
	case OpBackup:
		return a.runBackup(ctx)
	case OpRestore:
		return a.runRestore(ctx)
	case OpHistory:
		return a.runHistory(ctx)
	default:
		return fmt.Errorf("unknown operation %q (expected %s, %s or %s)", operation, OpBackup, OpRestore, OpHistory)
	}
}

func (a *App) runBackup(ctx context.Context) error {
	password, err := a.resolvePassword("VAULT BACKUP")
	if err != nil {
		return err
	}

	rec, err := a.services.BackupService.Backup(ctx, a.cfg.Backup.Email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Backup saved: %s (%d bytes, sha256 %s)\n", rec.FilePath, rec.SizeBytes, rec.SHA256)
	return nil
}

func (a *App) runRestore(ctx context.Context) error {
	password, err := a.resolvePassword("VAULT RESTORE")
	if err != nil {
		return err
	}

	payload, err := a.services.BackupService.Restore(ctx, password)
	if err != nil {
		return err
	}
	defer crypto.Wipe(payload)

	if a.cfg.Restore.CopyToClipboard {
		if err = clipboard.WriteAll(string(payload)); err != nil {
			return fmt.Errorf("error copying restore output to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Decrypted backup copied to clipboard.")
		return nil
	}

	// The payload goes to stdout verbatim so the output can be piped; every
	// other message in the program goes to stderr.
	_, err = a.stdout.Write(payload)
	return err
}

func (a *App) runHistory(ctx context.Context) error {
	records, err := a.services.BackupService.History(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(a.stdout, "No backups recorded yet.")
		return nil
	}

	fmt.Fprintf(a.stdout, "%-36s  %-20s  %-10s  %s\n", "ID", "CREATED (UTC)", "SIZE", "FILE")
	for _, rec := range records {
		fmt.Fprintf(a.stdout, "%-36s  %-20s  %-10d  %s\n",
			rec.ID, rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"), rec.SizeBytes, rec.FilePath)
	}
	return nil
}

// resolvePassword prefers the environment variable so the program works in
// cron jobs and scripts; the interactive prompt is the fallback.
func (a *App) resolvePassword(title string) (string, error) {
	if password := os.Getenv(passwordEnvVar); password != "" {
		return password, nil
	}
	return a.prompt.PromptPassword(title)
}
