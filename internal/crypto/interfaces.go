package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer is the password-based encryption boundary the rest of the
// application talks to. It composes the four stateless core components:
//
//	salt, nonce = GenerateSalt() + GenerateNonce()   (fresh per Seal)
//	key         = DeriveKey(password, salt)          (scrypt)
//	ciphertext  = Encrypt(plaintext, key, nonce)     (secretbox)
//	container   = Serialize(salt, nonce, ciphertext)
//
// A Sealer knows nothing about files, the vault program, or what the
// payload contains; it transforms bytes to bytes.
type Sealer interface {
	// Seal encrypts plaintext under a key derived from password and returns
	// the serialized container. Salt and nonce are generated fresh on every
	// call, so sealing the same plaintext with the same password twice
	// yields entirely different containers. The derived key is wiped before
	// Seal returns, on success and on error alike.
	Seal(password string, plaintext []byte) ([]byte, error)

	// Open parses a container produced by Seal, re-derives the key from
	// password and the stored salt, and returns the authenticated
	// plaintext. Returns ErrFormat for a truncated or foreign container and
	// ErrAuthentication when the password is wrong or the container was
	// altered, without distinguishing the two. The derived key is wiped
	// before Open returns.
	Open(password string, container []byte) ([]byte, error)
}
