// Package crypto implements the encryption core of go-vault-backup: scrypt
// key derivation from a password and a per-invocation random salt,
// XSalsa20-Poly1305 authenticated encryption of the vault payload, and the
// container codec for the on-disk artifact (salt ‖ nonce ‖ ciphertext).
//
// Every component is a pure function over explicit inputs (the generators
// being calls into the OS entropy source); none carries cross-call state.
// The password and derived key are never logged or persisted, and derived
// keys are wiped before any operation returns.
package crypto
