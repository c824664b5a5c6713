// Package crypto provides the bcrypt-backed credential collaborator.
package crypto

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes and verifies passwords with bcrypt.
type Bcrypt struct {
	cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A malformed or truncated hash
// verifies as false rather than erroring, so a corrupted row cannot take
// down a login attempt.
func (b *Bcrypt) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
