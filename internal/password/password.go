// Package password provides one-way salted hashing of account passwords.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the work factor the rest of the platform expects for
// stored credentials.
const DefaultCost = 10

// Hasher hashes and verifies plaintext passwords using bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// supported range are replaced with DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Default returns a Hasher at the production work factor.
func Default() Hasher {
	return Hasher{cost: DefaultCost}
}

// Hash derives a salted hash from the plaintext. Each call generates a fresh
// random salt, so two hashes of the same plaintext differ.
func (h Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
func (h Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
