// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"resumeapp/internal/domain/entity"
	"resumeapp/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token and the user it was issued for.
type LoginOutput struct {
	Token *service.IssuedToken
	User  *entity.User
}

// AuthUsecase defines registration, login and bearer-token authorization.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a user. A duplicate email fails with IDENTITY_TAKEN.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and issues an access token. An unknown
	// email and a wrong password fail with the same INVALID_CREDENTIALS error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize resolves the user behind a bearer token. Rejected tokens and
	// deleted users fail with UNAUTHORIZED.
	Authorize(ctx context.Context, token string) (*entity.User, error)
}
