// Package entity contains the core business objects of the résumé service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and own résumés.
type User struct {
	ID           uuid.UUID // Internal identifier, also the token subject.
	Email        string    // Unique login identity.
	PasswordHash string    // Output of the configured PasswordHasher, never the plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
