package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	// MinCost keeps the test fast; the round-trip property is cost-independent.
	hasher := NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("abc123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "abc123", hash)

	assert.NoError(t, hasher.Compare(hash, "abc123"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
	assert.Error(t, hasher.Compare(hash, ""))
}

func TestHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("abc123")
	require.NoError(t, err)
	second, err := hasher.Hash("abc123")
	require.NoError(t, err)

	// Each hash embeds a random salt, so the outputs must differ even for
	// identical plaintext.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "abc123"))
	assert.NoError(t, hasher.Compare(second, "abc123"))
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "below minimum", cost: 1},
		{name: "above maximum", cost: 99},
		{name: "zero", cost: 0},
		{name: "negative", cost: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewHasher(tt.cost)
			assert.Equal(t, DefaultBcryptCost, hasher.cost)
		})
	}
}
