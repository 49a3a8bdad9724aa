// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter drives the external vault-management program (the
// Bitwarden CLI). It is the only part of the application that talks to the
// outside world, and it treats the vault program purely as a collaborator:
// bytes out (the plaintext export), nothing interpreted.
//
// The plaintext export only ever exists in process memory; the adapter never
// writes it anywhere.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cli_mock.go -package=mock

// VaultCLI abstracts the external vault program so the service layer can be
// tested without a bw installation.
type VaultCLI interface {
	// Login authenticates the account non-interactively. The password
	// travels via the BW_PASSWORD environment variable, never via argv.
	// A failure here is not fatal: bw reports an error when the account is
	// already logged in, which is the common case, so Login only logs the
	// outcome (matching `bw login`'s tolerant role in the backup flow).
	Login(ctx context.Context, email, password string)

	// Unlock opens the vault and returns the session token printed by
	// `bw unlock`. Any stale BW_SESSION in the inherited environment is
	// scrubbed first.
	Unlock(ctx context.Context, password string) (session string, err error)

	// Export runs `bw export --format json` under the given session token
	// and returns the raw plaintext export bytes. The payload is opaque to
	// the caller by contract.
	Export(ctx context.Context, password, session string) ([]byte, error)
}

// CommandSpec describes one external command invocation: argv after the
// binary name and the complete child environment.
type CommandSpec struct {
	Args []string
	Env  []string
}

// CommandRunner executes one external command and returns its stdout. It is
// the seam between the adapter's argument/environment assembly (tested with
// a fake) and real subprocess execution.
type CommandRunner interface {
	Run(ctx context.Context, binary string, spec CommandSpec) ([]byte, error)
}
