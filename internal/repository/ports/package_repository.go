package ports

import (
	"context"

	"github.com/gounamur/travel-backend/internal/domain"
)

// PackageRepository returns packages with their destination briefs loaded.
type PackageRepository interface {
	Create(ctx context.Context, input domain.PackageInput) (*domain.Package, error)
	Update(ctx context.Context, id int64, input domain.PackageInput) (*domain.Package, error)
	SetImage(ctx context.Context, id int64, imageURL string) (*domain.Package, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error)
	Count(ctx context.Context) (int64, error)
}
