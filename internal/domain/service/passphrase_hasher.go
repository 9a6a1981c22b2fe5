package service

// PassphraseHasher hashes and verifies the pickup passphrase patrons choose when reserving.
type PassphraseHasher interface {
	// Hash generates a salted hash from a plaintext passphrase.
	Hash(passphrase string) (string, error)

	// Check compares a plaintext passphrase with a hash to see if they match.
	Check(passphrase, hash string) bool
}
