// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-vault-backup/internal/config"
	"github.com/MKhiriev/go-vault-backup/internal/logger"
)

// Environment variable names of the bw CLI contract.
const (
	passwordEnv = "BW_PASSWORD"
	sessionEnv  = "BW_SESSION"
)

// vaultCLIAdapter is the private implementation of [VaultCLI]. It assembles
// argv and the child environment for each bw invocation and delegates
// execution to a [CommandRunner].
type vaultCLIAdapter struct {
	binary string
	runner CommandRunner
	logger *logger.Logger
}

// NewVaultCLIAdapter constructs a [VaultCLI] executing the binary named in
// cfg with real subprocesses, each bounded by cfg.CommandTimeout.
func NewVaultCLIAdapter(cfg config.ClientVault, log *logger.Logger) VaultCLI {
	return newVaultCLIAdapterWithRunner(cfg, newExecRunner(cfg.CommandTimeout), log)
}

// newVaultCLIAdapterWithRunner is the test constructor: same assembly logic,
// caller-supplied runner.
func newVaultCLIAdapterWithRunner(cfg config.ClientVault, runner CommandRunner, log *logger.Logger) VaultCLI {
	return &vaultCLIAdapter{
		binary: cfg.Binary,
		runner: runner,
		logger: log,
	}
}

// Login implements [VaultCLI]. The password is handed to bw through the
// BW_PASSWORD variable (`--passwordenv`) so it never appears in the process
// list. bw exits non-zero when the account is already logged in, so the
// result is logged at debug level and otherwise ignored.
func (a *vaultCLIAdapter) Login(ctx context.Context, email, password string) {
	spec := CommandSpec{
		Args: []string{"--raw", "--nointeraction", "login", "--passwordenv", passwordEnv, email},
		Env:  append(scrubbedEnviron(), passwordEnv+"="+password),
	}

	_, err := a.runner.Run(ctx, a.binary, spec)
	a.logger.Debug().Bool("success", err == nil).Msg("bw login finished")
}

// Unlock implements [VaultCLI].
func (a *vaultCLIAdapter) Unlock(ctx context.Context, password string) (string, error) {
	spec := CommandSpec{
		Args: []string{"--raw", "--nointeraction", "unlock", password},
		Env:  scrubbedEnviron(),
	}

	out, err := a.runner.Run(ctx, a.binary, spec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrVaultUnlock, err)
	}

	session := strings.TrimSpace(string(out))
	if session == "" {
		return "", fmt.Errorf("%w: empty session token", ErrVaultUnlock)
	}

	a.logger.Debug().Msg("vault unlocked")
	return session, nil
}

// Export implements [VaultCLI]. The returned bytes are the plaintext vault
// export and are never logged or written by this method.
func (a *vaultCLIAdapter) Export(ctx context.Context, password, session string) ([]byte, error) {
	spec := CommandSpec{
		Args: []string{"--raw", "--nointeraction", "export", password, "--format", "json"},
		Env:  append(scrubbedEnviron(), sessionEnv+"="+session),
	}

	out, err := a.runner.Run(ctx, a.binary, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVaultExport, err)
	}

	a.logger.Debug().Int("payload_bytes", len(out)).Msg("vault export received")
	return out, nil
}

// scrubbedEnviron returns the current process environment without any stale
// BW_SESSION or BW_PASSWORD entries, so each invocation starts from a clean
// vault-program state.
func scrubbedEnviron() []string {
	environ := os.Environ()
	out := make([]string, 0, len(environ))
	for _, kv := range environ {
		if strings.HasPrefix(kv, sessionEnv+"=") || strings.HasPrefix(kv, passwordEnv+"=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}
