package usecase

import (
	"context"

	"resumeapp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateResumeInput defines the fields of a new résumé.
type CreateResumeInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// UpdateResumeInput is a partial update; nil fields are left unchanged.
type UpdateResumeInput struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=255"`
	Content *string `json:"content" validate:"omitnil,min=1"`
}

// ResumeUsecase manages the résumés of one authorized user. A résumé owned by
// someone else is reported as RESUME_NOT_FOUND.
type ResumeUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Resume, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateResumeInput) (*entity.Resume, error)
	Get(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error)
	Update(ctx context.Context, userID, resumeID uuid.UUID, input *UpdateResumeInput) (*entity.Resume, error)
	// Delete removes the résumé and returns it as it was.
	Delete(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error)
}
