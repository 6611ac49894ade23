package service

import (
	"context"
	"errors"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

var (
	ErrFavoriteAlreadyExists = errors.New("destination already saved to favorites")
	ErrFavoriteNotFound      = errors.New("favorite not found")
)

type FavoriteService struct {
	favorites    ports.FavoriteRepository
	destinations ports.DestinationRepository
}

func NewFavoriteService(favoriteRepo ports.FavoriteRepository, destinationRepo ports.DestinationRepository) *FavoriteService {
	return &FavoriteService{
		favorites:    favoriteRepo,
		destinations: destinationRepo,
	}
}

// Add saves the destination for the user. The insert itself enforces pair uniqueness, so two
// concurrent adds store one row and the loser gets ErrFavoriteAlreadyExists.
func (s *FavoriteService) Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		return nil, mapDestinationErr(err)
	}

	favorite, err := s.favorites.Add(ctx, userID, destinationID)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrDuplicate):
			return nil, ErrFavoriteAlreadyExists
		case errors.Is(err, ports.ErrMissingReference):
			// either side may have been deleted since the lookup
			if _, lookupErr := s.destinations.FindByID(ctx, destinationID); lookupErr != nil {
				return nil, mapDestinationErr(lookupErr)
			}
			return nil, ErrUserNotFound
		default:
			return nil, err
		}
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, destinationID int64) error {
	if err := s.favorites.Remove(ctx, userID, destinationID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// List returns the user's favorite destinations in the order they were added.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.Destination, error) {
	return s.favorites.ListDestinations(ctx, userID)
}

func (s *FavoriteService) Count(ctx context.Context, destinationID int64) (int64, error) {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		return 0, mapDestinationErr(err)
	}
	return s.favorites.CountByDestination(ctx, destinationID)
}
