package repository

import (
	"context"

	"resumeapp/internal/domain/entity"
	"resumeapp/internal/errors"

	"github.com/google/uuid"
)

// ErrResumeNotFound is returned when a résumé does not exist or belongs to another user.
var ErrResumeNotFound = errors.New("resume not found")

// ResumeRepository defines the storage operations for résumés.
// Every method is scoped by the owning user's ID.
type ResumeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resume, error)
	FindByIDForUser(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error)
	Create(ctx context.Context, resume *entity.Resume) error
	// Update writes title and content of an existing résumé owned by resume.UserID.
	Update(ctx context.Context, resume *entity.Resume) error
	Delete(ctx context.Context, userID, resumeID uuid.UUID) error
}
