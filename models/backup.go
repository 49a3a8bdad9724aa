// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupRecord is one row of the local backup catalog: metadata about a
// successfully written encrypted archive. It never contains the password,
// key material, or any plaintext vault data — only facts about the artifact
// that are safe to store unencrypted.
type BackupRecord struct {
	// ID is a UUIDv7 assigned when the record is created, so records sort
	// chronologically by ID as well as by CreatedAt.
	ID string

	// Email is the vault account the archive was exported from.
	Email string

	// FilePath is the absolute path of the written container file.
	FilePath string

	// SizeBytes is the container file size at the time of the backup.
	SizeBytes int64

	// SHA256 is the hex digest of the complete container, used to detect
	// later on-disk corruption of the artifact before a restore is tried.
	SHA256 string

	// CreatedAt is when the archive was written.
	CreatedAt time.Time
}
