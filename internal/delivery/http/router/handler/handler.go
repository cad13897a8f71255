// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	deliverycontext "resumeapp/internal/delivery/context"
	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ResumeResponse is the public view of a résumé.
type ResumeResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func newTokenResponse(t *service.IssuedToken) TokenResponse {
	return TokenResponse{AccessToken: t.AccessToken, TokenType: t.TokenType, ExpiresAt: t.ExpiresAt}
}

func newResumeResponse(r *entity.Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newResumeResponses(resumes []*entity.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, newResumeResponse(r))
	}

	return out
}

// bindBody decodes the request into dst. Decoding failures are reported as
// VALIDATION_FAILED; an oversized body keeps Echo's 413.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return echo.ErrStatusRequestEntityTooLarge
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.NewUnauthorizedError(nil)
	}

	return user, nil
}
