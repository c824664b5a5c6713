package ports

// Credentials hashes and verifies passwords. Verify must return false, not
// an error, on a malformed or corrupted hash so a bad row cannot crash a
// login attempt.
type Credentials interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
