// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"golang.org/x/crypto/nacl/secretbox"
)

// Overhead is the fixed size of the Poly1305 authentication tag appended to
// every ciphertext: len(ciphertext) = len(plaintext) + Overhead.
const Overhead = secretbox.Overhead

// Encrypt seals plaintext under key and nonce using XSalsa20-Poly1305.
//
// The function is deterministic given identical inputs; all of the system's
// non-determinism comes from the fresh salt and nonce generated upstream.
// It performs no I/O and never fails: every key and nonce of the declared
// sizes is valid for the construction.
func Encrypt(plaintext []byte, key *[KeySize]byte, nonce *[NonceSize]byte) []byte {
	return secretbox.Seal(nil, plaintext, nonce, key)
}

// Decrypt opens ciphertext produced by [Encrypt] with the same key and
// nonce. If the ciphertext was made under a different key, or any bit of it
// was altered, the Poly1305 check fails and [ErrAuthentication] is returned
// with no plaintext: the function fails closed and never exposes
// partially-decrypted or unauthenticated data.
func Decrypt(ciphertext []byte, key *[KeySize]byte, nonce *[NonceSize]byte) ([]byte, error) {
	plaintext, ok := secretbox.Open(nil, ciphertext, nonce, key)
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
