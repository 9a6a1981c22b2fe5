// Package passphrase stores reservation passphrases as bcrypt hashes.
package passphrase

import (
	"crypto/sha256"
	"encoding/base64"

	"library/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost, or bcrypt.DefaultCost when cost is out of range.
func NewBcryptHasher(cost int) service.PassphraseHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(passphrase string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(prehash(passphrase), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash passphrase")
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Check(passphrase, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(passphrase)) == nil
}

// prehash keeps bcrypt input at 44 bytes; bcrypt rejects anything over 72 bytes,
// which a short passphrase in multi-byte characters already exceeds.
func prehash(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))

	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
