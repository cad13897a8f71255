package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/repository"
	mockRepo "resumeapp/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// memoryUserStore is an in-memory UserRepository with a unique email index.
type memoryUserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *memoryUserStore) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (s *memoryUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	id, ok := s.byEmail[email]
	s.mu.Unlock()
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return s.FindByID(ctx, id)
}

func (s *memoryUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return domainerrors.ErrIdentityTaken
	}
	user.ID = uuid.Must(uuid.NewV7())
	clone := *user
	s.byID[user.ID] = &clone
	s.byEmail[user.Email] = user.ID

	return nil
}

func (s *memoryUserStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byID[id]; ok {
		delete(s.byEmail, user.Email)
		delete(s.byID, id)
	}
}

func (s *memoryUserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byID)
}

// memoryTx runs the callback directly against the in-memory store.
type memoryTx struct {
	users *memoryUserStore
}

func (tx memoryTx) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tx)
}

func (tx memoryTx) UserRepo() repository.UserRepository { return tx.users }

func (tx memoryTx) ResumeRepo() repository.ResumeRepository { return nil }

