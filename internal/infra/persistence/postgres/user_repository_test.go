package postgres

import (
	"context"
	"testing"

	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/repository"
	"resumeapp/internal/errors"
	"resumeapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Email: "alice@example.com", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "$2a$10$hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "bob@example.com", PasswordHash: "h1"}))

	err := repo.Create(ctx, &entity.User{Email: "bob@example.com", PasswordHash: "h2"})
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityTaken))

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Where("email = ?", "bob@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_ClosedDatabaseIsUnavailable(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewUserRepository(db).FindByEmail(context.Background(), "alice@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}
