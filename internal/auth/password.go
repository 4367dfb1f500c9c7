package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and checks bcrypt password hashes. Cost is configurable so
// deployments can tune the work factor without touching callers.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Check reports whether plaintext matches the stored hash. bcrypt embeds the
// salt and cost in the hash and compares in constant time.
func (h *Hasher) Check(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
