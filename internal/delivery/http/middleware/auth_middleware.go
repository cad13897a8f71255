// Package middleware contains the Echo middleware specific to the HTTP API.
package middleware

import (
	"strings"

	deliverycontext "resumeapp/internal/delivery/context"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/errors"
	"resumeapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

var (
	errMissingAuthorization = errors.New("authorization header is missing")
	errNotBearer            = errors.New("authorization scheme must be Bearer")
)

// AuthMiddleware resolves the bearer token of a request to a user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request with UNAUTHORIZED unless it carries a
// valid bearer token whose subject still exists. The user is stored on the
// echo.Context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return domainerrors.NewUnauthorizedError(err)
		}

		user, err := m.authUC.Authorize(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errMissingAuthorization
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", errNotBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingAuthorization
	}

	return token, nil
}
