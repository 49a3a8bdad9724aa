// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// ContainerMinSize is the smallest byte count a container can have: the two
// fixed-length fields with an empty ciphertext. Anything shorter is a
// truncated or foreign file.
const ContainerMinSize = SaltSize + NonceSize

// Serialize concatenates the three container fields into the on-disk layout:
//
//	salt (32 bytes) ‖ nonce (24 bytes) ‖ ciphertext (variable)
//
// Raw bytes, no length prefixes: both field widths are fixed constants known
// to [Parse]. The result is ready to write to storage and carries no
// password or key material.
func Serialize(salt [SaltSize]byte, nonce [NonceSize]byte, ciphertext []byte) []byte {
	out := make([]byte, 0, ContainerMinSize+len(ciphertext))
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	out = append(out, ciphertext...)
	return out
}

// Parse splits container bytes back into (salt, nonce, ciphertext).
//
// Returns [ErrFormat] if raw is shorter than [ContainerMinSize]. Everything
// past the fixed prefix is returned as ciphertext without further
// validation; whether it authenticates is [Decrypt]'s concern, not the
// codec's.
func Parse(raw []byte) (salt [SaltSize]byte, nonce [NonceSize]byte, ciphertext []byte, err error) {
	if len(raw) < ContainerMinSize {
		return [SaltSize]byte{}, [NonceSize]byte{}, nil, ErrFormat
	}

	copy(salt[:], raw[:SaltSize])
	copy(nonce[:], raw[SaltSize:ContainerMinSize])
	return salt, nonce, raw[ContainerMinSize:], nil
}
