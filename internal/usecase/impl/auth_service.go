// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "resumeapp/internal/delivery/context"
	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/repository"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"
	"resumeapp/internal/usecase"
	"resumeapp/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// dummyPassword is hashed once to give unknown-email logins the same hashing cost.
const dummyPassword = "resumeapp-login-timing-placeholder"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validate     *validator.Validate
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     params.Validate,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, hashes the password outside the transaction,
// then checks and inserts the identity in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("password: too long")
		}

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrIdentityTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityTaken) {
			srv.log(ctx).Info("Registration rejected, identity taken", slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.verifyDummy(ctx, input.Password)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Encode(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// verifyDummy runs one verification against a throwaway hash so an unknown
// email costs as much as a wrong password.
func (srv *authService) verifyDummy(ctx context.Context, password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to prepare dummy password hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	if srv.dummyHash == "" {
		return
	}
	_, _ = srv.hasher.Verify(password, srv.dummyHash)
}

// Authorize decodes the token and loads its subject.
func (srv *authService) Authorize(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Decode(token)
	if err != nil {
		srv.log(ctx).Warn("Access token rejected", slog.String("reason", tokenRejectReason(err)))

		return nil, domainerrors.NewUnauthorizedError(err)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Access token subject no longer exists", slog.Any("userID", claims.Subject))

			return nil, domainerrors.NewUnauthorizedError(err)
		}
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return nil, err
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to load token subject")
	}

	return user, nil
}

func tokenRejectReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}

// validateInput runs the struct tags of input and maps failures to VALIDATION_FAILED.
func validateInput(validate *validator.Validate, input any) error {
	if err := validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(util.FormatValidationError(err))
	}

	return nil
}
