// Package auth implements the identity core of the backend: password
// hashing, issuing and validating username-bearing JWTs, and moving tokens
// in and out of the session cookie.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of password. bcrypt salts every
// call, so hashing the same password twice yields two different strings
// that both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password reproduces the given bcrypt hash.
// A malformed hash verifies false, it never panics.
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
