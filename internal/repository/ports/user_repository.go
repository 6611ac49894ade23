package ports

import (
	"context"

	"github.com/gounamur/travel-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Delete removes the user and the user's favorites.
	Delete(ctx context.Context, id int64) error
}
