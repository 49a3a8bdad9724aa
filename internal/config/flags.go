package config

import (
	"flag"
	"io"
	"time"
)

// ParseFlags parses the configuration flags that follow the subcommand.
//
// Flags:
//
//	-file destination path of the encrypted backup file
//	-email vault account email to back up
//	-bw vault CLI binary name or path
//	-command-timeout per vault CLI invocation timeout (e.g., "2m")
//	-catalog backup catalog (sqlite) file path
//	-copy restore: place decrypted output on the clipboard
//	-v verbose (debug) logging
//	-c/-config json file path with configs
//
// args is everything after the subcommand on the command line. An unknown
// flag is reported as an error rather than terminating the process, so the
// caller decides how to surface it.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var filePath string
	var email string
	var vaultBinary string
	var commandTimeout time.Duration
	var catalogPath string
	var copyToClipboard bool
	var verbose bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("vaultbackup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&filePath, "file", "", "Encrypted backup file path")
	fs.StringVar(&email, "email", "", "Vault account email")
	fs.StringVar(&vaultBinary, "bw", "", "Vault CLI binary")
	fs.DurationVar(&commandTimeout, "command-timeout", 0, "Vault CLI timeout (e.g., 2m)")
	fs.StringVar(&catalogPath, "catalog", "", "Backup catalog path")
	fs.BoolVar(&copyToClipboard, "copy", false, "Copy decrypted output to clipboard")
	fs.BoolVar(&verbose, "v", false, "Verbose output")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Verbose: verbose,
		},
		Backup: Backup{
			FilePath: filePath,
			Email:    email,
		},
		Vault: Vault{
			Binary:         vaultBinary,
			CommandTimeout: commandTimeout,
		},
		Storage: Storage{
			CatalogPath: catalogPath,
		},
		Restore: Restore{
			CopyToClipboard: copyToClipboard,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
