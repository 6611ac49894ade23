package memory

import (
	"context"
	"sort"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type FavoriteRepository struct {
	store *Store
}

func NewFavoriteRepo(store *Store) *FavoriteRepository {
	return &FavoriteRepository{store: store}
}

func (r *FavoriteRepository) Add(_ context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, ports.ErrMissingReference
	}
	if _, ok := s.destinations[destinationID]; !ok {
		return nil, ports.ErrMissingReference
	}
	key := favoriteKey{userID: userID, destinationID: destinationID}
	if _, exists := s.favorites[key]; exists {
		return nil, ports.ErrDuplicate
	}

	s.nextFavoriteID++
	fav := &domain.Favorite{
		ID:            s.nextFavoriteID,
		UserID:        userID,
		DestinationID: destinationID,
		CreatedAt:     s.now(),
	}
	s.favorites[key] = fav

	out := *fav
	return &out, nil
}

func (r *FavoriteRepository) Remove(_ context.Context, userID, destinationID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, destinationID: destinationID}
	if _, ok := s.favorites[key]; !ok {
		return ports.ErrNotFound
	}
	delete(s.favorites, key)
	return nil
}

func (r *FavoriteRepository) ListDestinations(_ context.Context, userID int64) ([]domain.Destination, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.Favorite, 0)
	for key, fav := range s.favorites {
		if key.userID == userID {
			owned = append(owned, fav)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	destinations := make([]domain.Destination, 0, len(owned))
	for _, fav := range owned {
		if dest, ok := s.destinations[fav.DestinationID]; ok {
			destinations = append(destinations, cloneDestination(dest))
		}
	}
	return destinations, nil
}

func (r *FavoriteRepository) CountByDestination(_ context.Context, destinationID int64) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for key := range s.favorites {
		if key.destinationID == destinationID {
			count++
		}
	}
	return count, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
