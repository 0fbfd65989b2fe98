package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain text password using bcrypt. Cost is adaptive
// (bcrypt.DefaultCost); the salt is embedded in the returned hash.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain re-hashes to hash. Malformed
// hashes yield false, never a panic or error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
