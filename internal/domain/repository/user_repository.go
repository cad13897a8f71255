// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use case layer and the infrastructure layer.
package repository

import (
	"context"

	"resumeapp/internal/domain/entity"
	"resumeapp/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the storage operations for user records.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their login email.
	// The lookup is served by the primary so a fresh registration is visible immediately.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	// A duplicate email yields domainerrors.ErrIdentityTaken.
	Create(ctx context.Context, user *entity.User) error
}
