// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Sizes of the fixed-length fields, in bytes. SaltSize matches what the
// scrypt derivation expects; NonceSize and KeySize are dictated by the
// XSalsa20-Poly1305 secretbox construction.
const (
	SaltSize  = 32
	NonceSize = 24
	KeySize   = 32
)

// GenerateSalt reads a fresh key-derivation salt from the OS CSPRNG. A new
// salt must be generated for every encryption operation; reusing one would
// let an attacker precompute keys for common passwords.
func GenerateSalt() ([SaltSize]byte, error) {
	var salt [SaltSize]byte
	if err := fillRandom(salt[:]); err != nil {
		return [SaltSize]byte{}, err
	}
	return salt, nil
}

// GenerateNonce reads a fresh secretbox nonce from the OS CSPRNG,
// independently of the salt. A nonce must never be reused with the same key
// for two different plaintexts; freshness per invocation enforces that.
func GenerateNonce() ([NonceSize]byte, error) {
	var nonce [NonceSize]byte
	if err := fillRandom(nonce[:]); err != nil {
		return [NonceSize]byte{}, err
	}
	return nonce, nil
}

// fillRandom fills b from the OS secure random source. A short or failed
// read surfaces as [ErrEntropyFailure]; it is never retried and there is no
// fallback source.
func fillRandom(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return nil
}
