package postgres

import (
	"context"
	"time"

	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/repository"
	"resumeapp/internal/errors"
	"resumeapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resumeRepository implements repository.ResumeRepository. Every query is
// filtered by user_id, so another user's résumé behaves as missing.
type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository is the constructor for resumeRepository.
func NewResumeRepository(db *gorm.DB) repository.ResumeRepository {
	return &resumeRepository{db: db}
}

// ListByUser returns the user's résumés, oldest first.
func (repo *resumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resume, error) {
	var models []model.ResumeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list resumes")
	}

	resumes := make([]*entity.Resume, 0, len(models))
	for i := range models {
		resumes = append(resumes, toResumeDomain(&models[i]))
	}

	return resumes, nil
}

func (repo *resumeRepository) FindByIDForUser(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error) {
	var resumeM model.ResumeModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", resumeID, userID).
		First(&resumeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResumeNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find resume")
	}

	return toResumeDomain(&resumeM), nil
}

func (repo *resumeRepository) Create(ctx context.Context, resume *entity.Resume) error {
	resumeM := fromResumeDomain(resume)

	if err := repo.db.WithContext(ctx).Create(resumeM).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to create resume")
	}

	resume.ID = resumeM.ID
	resume.CreatedAt = resumeM.CreatedAt
	resume.UpdatedAt = resumeM.UpdatedAt

	return nil
}

// Update writes title and content. No matching row owned by resume.UserID
// yields repository.ErrResumeNotFound.
func (repo *resumeRepository) Update(ctx context.Context, resume *entity.Resume) error {
	updatedAt := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ResumeModel{}).
		Where("id = ? AND user_id = ?", resume.ID, resume.UserID).
		Updates(map[string]any{
			"title":      resume.Title,
			"content":    resume.Content,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewStoreUnavailableError(result.Error, "failed to update resume")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResumeNotFound
	}

	resume.UpdatedAt = updatedAt

	return nil
}

func (repo *resumeRepository) Delete(ctx context.Context, userID, resumeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", resumeID, userID).
		Delete(&model.ResumeModel{})
	if result.Error != nil {
		return domainerrors.NewStoreUnavailableError(result.Error, "failed to delete resume")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResumeNotFound
	}

	return nil
}

func toResumeDomain(data *model.ResumeModel) *entity.Resume {
	if data == nil {
		return nil
	}

	return &entity.Resume{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromResumeDomain(data *entity.Resume) *model.ResumeModel {
	if data == nil {
		return nil
	}

	return &model.ResumeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
