// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// sealer is the private implementation of [Sealer]. It carries no state:
// every call takes all inputs explicitly and shares nothing with concurrent
// calls, so a single sealer is safe to use from any number of goroutines.
type sealer struct{}

// NewSealer constructs a [Sealer].
func NewSealer() Sealer {
	return &sealer{}
}

// Seal implements [Sealer].
func (s *sealer) Seal(password string, plaintext []byte) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	ciphertext := Encrypt(plaintext, key, &nonce)
	return Serialize(salt, nonce, ciphertext), nil
}

// Open implements [Sealer].
func (s *sealer) Open(password string, container []byte) ([]byte, error) {
	salt, nonce, ciphertext, err := Parse(container)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	return Decrypt(ciphertext, key, &nonce)
}
