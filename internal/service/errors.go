package service

import "errors"

var (
	// ErrEmailRequired is returned by Backup when no account email was
	// configured or passed.
	ErrEmailRequired = errors.New("account email is required for backup")
)

// The encryption core's errors (crypto.ErrAuthentication, crypto.ErrFormat,
// crypto.ErrEntropyFailure, crypto.ErrKeyDerivation) are propagated
// unchanged by this package: retrying cannot change their outcome, and the
// authentication message must stay identical for wrong-password, corrupted
// and tampered containers alike.
