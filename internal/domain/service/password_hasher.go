// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "resumeapp/internal/errors"

var (
	// ErrMalformedHash means a stored hash could not be parsed. It signals
	// corrupted storage and is never returned for a plain mismatch.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordTooLong is returned by Hash when the algorithm cannot take the input.
	ErrPasswordTooLong = errors.New("password exceeds the hasher's maximum length")
)

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt, argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// a hash that cannot be parsed is (false, ErrMalformedHash).
	Verify(password, hash string) (bool, error)
}
