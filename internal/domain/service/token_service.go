package service

import (
	"time"

	"resumeapp/internal/errors"

	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "bearer"

// Decode failure kinds. Callers tell them apart with errors.Is.
var (
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenBadSignature = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token is expired")
)

// Claims is the payload carried by an access token.
type Claims struct {
	Subject   uuid.UUID // The user's internal ID.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed access token.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// TokenService encodes and decodes signed, self-contained access tokens.
// Implementations are stateless and safe for concurrent use.
type TokenService interface {
	// Encode signs a token for subject, valid from now for the configured TTL.
	Encode(subject uuid.UUID) (*IssuedToken, error)

	// Decode verifies signature and expiry and returns the claims. Errors wrap
	// ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
	Decode(token string) (*Claims, error)
}
