package auth

import (
	"strings"
	"testing"
	"time"

	"resumeapp/config"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = config.JWTConfig{
	Secret:               "test_access_secret_key_very_long_for_testing",
	Algorithm:            "HS256",
	AccessTokenExpireMin: 15,
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, cfg config.JWTConfig, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(cfg, WithClock(clock.Now))
	require.NoError(t, err)

	return svc
}

func TestJWTService_EncodeDecode(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)}
	svc := newTestJWTService(t, testJWTConfig, clock)
	userID := uuid.New()

	issued, err := svc.Encode(userID)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeBearer, issued.TokenType)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC), issued.ExpiresAt)

	claims, err := svc.Decode(issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(issued.ExpiresAt))
	assert.True(t, claims.IssuedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, testJWTConfig, clock)

	issued, err := svc.Encode(uuid.New())
	require.NoError(t, err)

	clock.now = clock.now.Add(15*time.Minute + time.Second)
	_, err = svc.Decode(issued.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_ValidAtExactExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, testJWTConfig, clock)

	issued, err := svc.Encode(uuid.New())
	require.NoError(t, err)

	clock.now = issued.ExpiresAt
	_, err = svc.Decode(issued.AccessToken)
	require.NoError(t, err)

	clock.now = issued.ExpiresAt.Add(time.Nanosecond)
	_, err = svc.Decode(issued.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_BadSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testJWTConfig, clock)

	other := testJWTConfig
	other.Secret = "another_secret"
	otherSvc := newTestJWTService(t, other, clock)

	issued, err := otherSvc.Encode(uuid.New())
	require.NoError(t, err)

	_, err = svc.Decode(issued.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenBadSignature))

	own, err := svc.Encode(uuid.New())
	require.NoError(t, err)
	_, err = svc.Decode(own.AccessToken + "x")
	assert.True(t, errors.Is(err, service.ErrTokenBadSignature))
}

func TestJWTService_RejectsOtherAlgorithm(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testJWTConfig, clock)

	hs512 := testJWTConfig
	hs512.Algorithm = "HS512"
	issued, err := newTestJWTService(t, hs512, clock).Encode(uuid.New())
	require.NoError(t, err)

	_, err = svc.Decode(issued.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenBadSignature))
}

func TestJWTService_Malformed(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testJWTConfig, clock)

	_, err := svc.Decode("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))

	_, err = svc.Decode("")
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_SubjectMustBeUUID(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testJWTConfig, clock)

	sign := func(claims jwt.RegisteredClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTConfig.Secret))
		require.NoError(t, err)

		return signed
	}
	exp := jwt.NewNumericDate(clock.now.Add(time.Hour))

	_, err := svc.Decode(sign(jwt.RegisteredClaims{Subject: "alice@example.com", ExpiresAt: exp}))
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))

	_, err = svc.Decode(sign(jwt.RegisteredClaims{ExpiresAt: exp}))
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))

	_, err = svc.Decode(sign(jwt.RegisteredClaims{Subject: uuid.NewString()}))
	assert.True(t, errors.Is(err, service.ErrTokenMalformed), "exp is required")
}

func TestNewJWTService_InvalidConfig(t *testing.T) {
	cases := map[string]func(*config.JWTConfig){
		"empty secret":  func(c *config.JWTConfig) { c.Secret = "" },
		"rsa algorithm": func(c *config.JWTConfig) { c.Algorithm = "RS256" },
		"unknown":       func(c *config.JWTConfig) { c.Algorithm = "none" },
		"zero ttl":      func(c *config.JWTConfig) { c.AccessTokenExpireMin = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testJWTConfig
			mutate(&cfg)

			svc, err := NewJWTService(cfg)
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}

	_, err := NewJWTService(config.JWTConfig{Secret: "s", Algorithm: strings.ToUpper("hs384"), AccessTokenExpireMin: 1})
	assert.NoError(t, err)
}
