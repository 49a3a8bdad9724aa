package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-vault-backup/internal/adapter"
	"github.com/MKhiriev/go-vault-backup/internal/client"
	"github.com/MKhiriev/go-vault-backup/internal/config"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
	"github.com/MKhiriev/go-vault-backup/internal/service"
	"github.com/MKhiriev/go-vault-backup/internal/store"
	"github.com/MKhiriev/go-vault-backup/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	operation, args := splitOperation(os.Args[1:])

	cfg, err := config.GetClientConfig(args)
	if err != nil {
		logger.NewLogger(operation, false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(operation, cfg.App.Verbose)
	log.Debug().Any("config", cfg).Msg("received configs")

	vaultAdapter := adapter.NewVaultCLIAdapter(cfg.Vault, log)

	storages, err := store.NewClientStorages(context.Background(), cfg.Backup, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewClientServices(vaultAdapter, storages, log)

	app, err := client.NewApp(cfg, services, tui.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(operation); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

// splitOperation peels the subcommand off the command line. The first
// argument is the operation when it is not a flag; flags before the
// subcommand are not supported. No subcommand means backup, matching the
// program's main job.
func splitOperation(argv []string) (string, []string) {
	if len(argv) == 0 || strings.HasPrefix(argv[0], "-") {
		return client.OpBackup, argv
	}
	return argv[0], argv[1:]
}

// printBuildInfo writes to stderr: stdout is reserved for restore output.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
