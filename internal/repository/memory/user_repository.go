package memory

import (
	"context"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type UserRepository struct {
	store *Store
}

func NewUserRepo(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, user domain.NewUser) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, ports.ErrDuplicate
		}
	}

	s.nextUserID++
	now := s.now()
	created := &domain.User{
		ID:           s.nextUserID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: append([]byte(nil), user.PasswordHash...),
		PasswordSalt: append([]byte(nil), user.PasswordSalt...),
		Role:         user.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[created.ID] = created

	out := *created
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ports.ErrNotFound
	}
	for key := range s.favorites {
		if key.userID == id {
			delete(s.favorites, key)
		}
	}
	delete(s.users, id)
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
