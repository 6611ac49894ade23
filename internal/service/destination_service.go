package service

import (
	"context"
	"errors"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/media"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type DestinationService struct {
	destinations ports.DestinationRepository
	images       *ImageUploader
}

func NewDestinationService(repo ports.DestinationRepository, images *ImageUploader) *DestinationService {
	return &DestinationService{destinations: repo, images: images}
}

// List validates and normalises the filter, then returns the matching page together with
// the window that was applied.
func (s *DestinationService) List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, domain.Page, error) {
	normalized, err := normalizeDestinationFilter(filter)
	if err != nil {
		return nil, filter.Page, err
	}
	items, err := s.destinations.List(ctx, normalized)
	if err != nil {
		return nil, normalized.Page, err
	}
	return items, normalized.Page, nil
}

func (s *DestinationService) Get(ctx context.Context, id int64) (*domain.Destination, error) {
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		return nil, mapDestinationErr(err)
	}
	return dest, nil
}

func (s *DestinationService) Continents(ctx context.Context) ([]string, error) {
	return s.destinations.ListContinents(ctx)
}

func (s *DestinationService) Create(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	valid, err := validateDestinationInput(input)
	if err != nil {
		return nil, err
	}
	return s.destinations.Create(ctx, valid)
}

func (s *DestinationService) Update(ctx context.Context, id int64, input domain.DestinationInput) (*domain.Destination, error) {
	valid, err := validateDestinationInput(input)
	if err != nil {
		return nil, err
	}
	dest, err := s.destinations.Update(ctx, id, valid)
	if err != nil {
		return nil, mapDestinationErr(err)
	}
	return dest, nil
}

// Delete removes the destination. Favorites and package links pointing at it go with it.
func (s *DestinationService) Delete(ctx context.Context, id int64) error {
	return mapDestinationErr(s.destinations.Delete(ctx, id))
}

func (s *DestinationService) UploadImage(ctx context.Context, id int64, upload media.Upload) (*domain.Destination, error) {
	if _, err := s.destinations.FindByID(ctx, id); err != nil {
		return nil, mapDestinationErr(err)
	}
	url, err := s.images.Store(ctx, "destinations", id, upload)
	if err != nil {
		return nil, err
	}
	dest, err := s.destinations.SetImage(ctx, id, url)
	if err != nil {
		return nil, mapDestinationErr(err)
	}
	return dest, nil
}

func mapDestinationErr(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return ErrDestinationNotFound
	}
	return err
}
