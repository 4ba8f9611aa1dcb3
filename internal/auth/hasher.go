package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and checks salted one-way password digests. bcrypt embeds
// a random salt in every hash, so hashing the same plaintext twice yields
// different outputs, and comparison runs in constant time.
type Hasher struct {
	cost int
}

// NewHasher accepts a work factor; zero or out-of-range values fall back to
// the bcrypt default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. Malformed
// digests simply verify as false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
