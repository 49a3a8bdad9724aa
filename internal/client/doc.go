// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It resolves the master password (environment variable first, interactive
// prompt second), dispatches the requested operation to the backup service,
// and owns all user-facing output: the restore payload on stdout or the
// clipboard, the history table, and nothing else.
package client
