package impl

import (
	"context"
	"log/slog"

	deliverycontext "resumeapp/internal/delivery/context"
	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/repository"
	"resumeapp/internal/errors"
	"resumeapp/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type resumeService struct {
	txManager  repository.TransactionManager
	resumeRepo repository.ResumeRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// ResumeServiceParams holds dependencies for ResumeService, injected by Fx.
type ResumeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ResumeRepo repository.ResumeRepository
	Validate   *validator.Validate
	Logger     *slog.Logger
}

// NewResumeService is the constructor for resumeService.
func NewResumeService(params ResumeServiceParams) usecase.ResumeUsecase {
	return &resumeService{
		txManager:  params.TxManager,
		resumeRepo: params.ResumeRepo,
		validate:   params.Validate,
		logger:     params.Logger,
	}
}

func (srv *resumeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *resumeService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Resume, error) {
	resumes, err := srv.resumeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resumes")
	}

	return resumes, nil
}

func (srv *resumeService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateResumeInput) (*entity.Resume, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	resume := &entity.Resume{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := srv.resumeRepo.Create(ctx, resume); err != nil {
		return nil, errors.Wrap(err, "failed to create resume")
	}

	srv.log(ctx).Debug("Resume created", slog.Any("userID", userID), slog.Any("resumeID", resume.ID))

	return resume, nil
}

func (srv *resumeService) Get(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error) {
	resume, err := srv.resumeRepo.FindByIDForUser(ctx, userID, resumeID)
	if err != nil {
		return nil, mapResumeError(err, "failed to get resume")
	}

	return resume, nil
}

// Update applies the provided fields only. Finding and writing happen in one transaction.
func (srv *resumeService) Update(ctx context.Context, userID, resumeID uuid.UUID, input *usecase.UpdateResumeInput) (*entity.Resume, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	patch := entity.ResumePatch{Title: input.Title, Content: input.Content}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNothingToUpdate
	}

	var updated *entity.Resume
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resumeRepo := repoFactory.ResumeRepo()

		resume, err := resumeRepo.FindByIDForUser(ctx, userID, resumeID)
		if err != nil {
			return err
		}

		patch.Apply(resume)
		if err := resumeRepo.Update(ctx, resume); err != nil {
			return err
		}
		updated = resume

		return nil
	})
	if err != nil {
		return nil, mapResumeError(err, "failed to update resume")
	}

	return updated, nil
}

// Delete removes the résumé and returns the record as it was before deletion.
func (srv *resumeService) Delete(ctx context.Context, userID, resumeID uuid.UUID) (*entity.Resume, error) {
	var deleted *entity.Resume
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resumeRepo := repoFactory.ResumeRepo()

		resume, err := resumeRepo.FindByIDForUser(ctx, userID, resumeID)
		if err != nil {
			return err
		}
		if err := resumeRepo.Delete(ctx, userID, resumeID); err != nil {
			return err
		}
		deleted = resume

		return nil
	})
	if err != nil {
		return nil, mapResumeError(err, "failed to delete resume")
	}

	srv.log(ctx).Debug("Resume deleted", slog.Any("userID", userID), slog.Any("resumeID", resumeID))

	return deleted, nil
}

// mapResumeError turns the repository's not-found sentinel into RESUME_NOT_FOUND.
func mapResumeError(err error, msg string) error {
	if errors.Is(err, repository.ErrResumeNotFound) {
		return domainerrors.ErrResumeNotFound
	}

	return errors.Wrap(err, msg)
}
