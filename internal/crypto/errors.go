package crypto

import "errors"

// Sentinel errors returned by the encryption core. Callers should use
// [errors.Is] to match against these values. All four are unrecoverable at
// the point they occur: the core never retries internally, and each value
// propagates unchanged to the caller.
var (
	// ErrEntropyFailure is returned when the OS secure random source cannot
	// produce the requested bytes. The operation is aborted immediately;
	// there is no fallback to a weaker source and no retry, because a broken
	// entropy source cannot be assumed to self-heal.
	ErrEntropyFailure = errors.New("secure random source failed")

	// ErrKeyDerivation is returned when the scrypt primitive rejects its
	// parameters. With the fixed parameters compiled into this package that
	// indicates a programming-invariant violation, not a runtime condition.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrAuthentication is returned when decryption's integrity check fails:
	// wrong password, corrupted file, or tampering. The three cases are
	// deliberately not distinguished, so that an attacker probing passwords
	// learns nothing from the error.
	ErrAuthentication = errors.New("decryption failed")

	// ErrFormat is returned when container bytes are too short to hold the
	// fixed-length salt and nonce prefix, signaling a truncated or foreign
	// file rather than a cryptographic failure.
	ErrFormat = errors.New("not a valid backup file")
)
