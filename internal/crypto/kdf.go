// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt work-factor parameters. Fixed at compile time and tuned for
// interactive use: roughly a tenth of a second per derivation on current
// desktop hardware while staying memory-hard against offline brute force.
// They match libsodium's scrypt "interactive" profile, so existing archives
// encrypted with that profile decrypt with the same password.
const (
	scryptN = 1 << 14 // CPU/memory cost, 16 MiB working set
	scryptR = 8
	scryptP = 1
)

// DeriveKey derives a 256-bit secretbox key from the password and salt.
//
// The function is deterministic and pure: identical (password, salt) pairs
// always yield the identical key, and any change to either input yields an
// unrelated key. The returned key is secret; callers own wiping it once the
// surrounding encrypt or decrypt operation completes.
//
// Returns [ErrKeyDerivation] only if scrypt rejects its parameters, which
// with the fixed values above means a broken build rather than a runtime
// condition.
func DeriveKey(password string, salt [SaltSize]byte) (*[KeySize]byte, error) {
	raw, err := scrypt.Key([]byte(password), salt[:], scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}

	key := new([KeySize]byte)
	copy(key[:], raw)
	Wipe(raw)
	return key, nil
}
