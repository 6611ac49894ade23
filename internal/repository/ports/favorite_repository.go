package ports

import (
	"context"

	"github.com/gounamur/travel-backend/internal/domain"
)

type FavoriteRepository interface {
	// Add returns ErrDuplicate when the pair exists and ErrMissingReference when the user or
	// destination does not.
	Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, destinationID int64) error
	ListDestinations(ctx context.Context, userID int64) ([]domain.Destination, error)
	CountByDestination(ctx context.Context, destinationID int64) (int64, error)
}
