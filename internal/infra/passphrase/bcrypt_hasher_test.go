package passphrase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("ひみつ")
	require.NoError(t, err)
	assert.NotEqual(t, "ひみつ", hash)

	assert.True(t, hasher.Check("ひみつ", hash))
	assert.False(t, hasher.Check("ちがう", hash))
	assert.False(t, hasher.Check("ひみつ", "not-a-hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("1234")
	require.NoError(t, err)
	second, err := hasher.Hash("1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero uses default", 0, bcrypt.DefaultCost},
		{"too high uses default", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{"valid cost kept", bcrypt.MinCost, bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cost).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_MultiByteAndLongPassphrases(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name       string
		passphrase string
		other      string
	}{
		{"30 kana is 90 bytes", strings.Repeat("あ", 30), strings.Repeat("あ", 29) + "い"},
		{"ascii past 72 bytes", strings.Repeat("a", 73), strings.Repeat("a", 72) + "b"},
		{"long passphrase", strings.Repeat("図書館", 100), strings.Repeat("図書館", 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.passphrase)
			require.NoError(t, err)

			assert.True(t, hasher.Check(tt.passphrase, hash))
			// bytes past 72 still count
			assert.False(t, hasher.Check(tt.other, hash))
		})
	}
}
