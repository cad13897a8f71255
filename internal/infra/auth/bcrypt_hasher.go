// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"resumeapp/config"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = bcrypt.DefaultCost

// bcryptMaxPasswordBytes is the input limit of bcrypt.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// A cost outside bcrypt's accepted range falls back to DefaultBcryptCost.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewPasswordHasher builds the hasher selected by auth.passwordHasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.PasswordHasher {
	case "", config.HasherBcrypt:
		return NewBcryptHasher(cfg.Auth.BcryptCost), nil
	case config.HasherArgon2id:
		return NewArgon2Hasher(
			WithArgon2Time(cfg.Auth.Argon2.Time),
			WithArgon2Memory(cfg.Auth.Argon2.MemoryKiB),
			WithArgon2Threads(cfg.Auth.Argon2.Threads),
		), nil
	default:
		return nil, errors.Errorf("unknown password hasher: %s", cfg.Auth.PasswordHasher)
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", service.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(hash), nil
}

// Verify compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	// Nothing longer than the limit could have been hashed by Hash.
	if len(password) > bcryptMaxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(service.ErrMalformedHash, err.Error())
	}
}
