package ports

import (
	"context"

	"github.com/gounamur/travel-backend/internal/domain"
)

type DestinationRepository interface {
	Create(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error)
	Update(ctx context.Context, id int64, input domain.DestinationInput) (*domain.Destination, error)
	SetImage(ctx context.Context, id int64, imageURL string) (*domain.Destination, error)
	// Delete removes the destination together with its favorites and package links.
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Destination, error)
	List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error)
	ListContinents(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
