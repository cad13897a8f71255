package auth

import (
	"time"

	"resumeapp/config"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption customizes the token service.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) { s.now = now }
}

// NewJWTService is the constructor for jwtService. Only HMAC algorithms are accepted.
func NewJWTService(cfg config.JWTConfig, opts ...JWTOption) (service.TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.AccessTokenExpireMin <= 0 {
		return nil, errors.New("jwt access token lifetime must be positive")
	}

	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %q", cfg.Algorithm)
	}

	s := &jwtService{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.AccessTokenTTL(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Encode signs an access token whose subject is the user's ID.
func (s *jwtService) Encode(subject uuid.UUID) (*service.IssuedToken, error) {
	// NumericDate has second precision; keep the reported expiry identical to the claim.
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		AccessToken: signed,
		TokenType:   service.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Decode verifies the token and returns its claims.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		// jwt treats now == exp as expired; a token is expired only once now is past exp.
		jwt.WithLeeway(time.Nanosecond),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "subject %q", claims.Subject)
	}

	result := &service.Claims{Subject: subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenBadSignature, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
