package auth

import "golang.org/x/crypto/bcrypt"

// PlaceholderToken is the opaque session token returned on successful
// authentication. Real token issuance lives outside this service.
const PlaceholderToken = "dummy_token"

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash.
// A malformed hash is reported as a verification failure, never an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
