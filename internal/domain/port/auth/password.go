package auth

// PasswordHasher hashes and checks account passwords
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash
	Compare(hash, password string) bool
}
