// Package models holds the persistent domain records of the todolist backend.
package models

// Account is a user identity record. PasswordHash is the bcrypt digest of the
// account password; the plaintext is never stored and the hash is never
// serialized outward (the API layer maps accounts to redacted DTOs).
type Account struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
}
