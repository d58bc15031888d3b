package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for passwords and security answers.
// Tests lower it to bcrypt.MinCost.
var BcryptCost = 12

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is a mismatch, not an error.
func CheckPassword(hashedPassword, password string) bool {
	if hashedPassword == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// HashSecurityAnswer hashes a security answer. Answers are compared
// case-insensitively with surrounding whitespace ignored.
func HashSecurityAnswer(answer string) (string, error) {
	return HashPassword(normalizeAnswer(answer))
}

// CheckSecurityAnswer verifies an answer against its hash.
func CheckSecurityAnswer(hashedAnswer, answer string) bool {
	return CheckPassword(hashedAnswer, normalizeAnswer(answer))
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
