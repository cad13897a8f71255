package postgres

import (
	"context"
	"testing"

	"resumeapp/internal/domain/entity"
	"resumeapp/internal/domain/repository"
	"resumeapp/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Email: "tx@example.com", PasswordHash: "hash"}
		if err := factory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return factory.ResumeRepo().Create(ctx, &entity.Resume{UserID: user.ID, Title: "T", Content: "C"})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	list, err := NewResumeRepository(db).ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Email: "rollback@example.com", PasswordHash: "hash"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.UserRepo().Create(ctx, &entity.User{Email: "panic@example.com", PasswordHash: "hash"})
			panic("unexpected")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "panic@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
