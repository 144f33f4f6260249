package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// the way other bcrypt implementations do, so existing hashes keep matching.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password using the given cost.
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] is replaced by
// bcrypt.DefaultCost. Only the first 72 bytes of password are significant.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// Hashes produced with the $2a$, $2b$ and $2y$ prefixes are accepted.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}
