package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used for password hashing. 12 keeps a
// single hash well under interactive latency budgets while staying expensive
// for offline brute force.
const DefaultBcryptCost = 12

// Hasher hashes and verifies passwords using bcrypt with a fixed work factor.
type Hasher struct {
	cost int
}

// NewHasher creates a password hasher with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of the plaintext password.
// Each call generates a fresh salt, so repeated hashes of the same
// plaintext differ.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash using bcrypt's
// constant-time comparison. Returns nil on match.
func (h *Hasher) Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
