package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type DestinationRepository struct {
	store *Store
}

func NewDestinationRepo(store *Store) *DestinationRepository {
	return &DestinationRepository{store: store}
}

func (r *DestinationRepository) Create(_ context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDestinationID++
	now := s.now()
	dest := &domain.Destination{ID: s.nextDestinationID, CreatedAt: now}
	applyDestinationInput(dest, input, now)
	s.destinations[dest.ID] = dest

	out := cloneDestination(dest)
	return &out, nil
}

func (r *DestinationRepository) Update(_ context.Context, id int64, input domain.DestinationInput) (*domain.Destination, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	dest, ok := s.destinations[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	applyDestinationInput(dest, input, s.now())

	out := cloneDestination(dest)
	return &out, nil
}

func (r *DestinationRepository) SetImage(_ context.Context, id int64, imageURL string) (*domain.Destination, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	dest, ok := s.destinations[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	dest.ImageURL = imageURL
	dest.UpdatedAt = s.now()

	out := cloneDestination(dest)
	return &out, nil
}

func (r *DestinationRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.destinations[id]; !ok {
		return ports.ErrNotFound
	}
	for key := range s.favorites {
		if key.destinationID == id {
			delete(s.favorites, key)
		}
	}
	for pkgID, links := range s.packageLinks {
		kept := links[:0]
		for _, destID := range links {
			if destID != id {
				kept = append(kept, destID)
			}
		}
		s.packageLinks[pkgID] = kept
	}
	delete(s.destinations, id)
	return nil
}

func (r *DestinationRepository) FindByID(_ context.Context, id int64) (*domain.Destination, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dest, ok := s.destinations[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := cloneDestination(dest)
	return &out, nil
}

func (r *DestinationRepository) List(_ context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Destination, 0)
	for _, id := range sortedKeys(s.destinations) {
		if dest := s.destinations[id]; filter.Matches(dest) {
			matched = append(matched, cloneDestination(dest))
		}
	}
	start, end := filter.Page.Window(len(matched))
	return matched[start:end], nil
}

func (r *DestinationRepository) ListContinents(_ context.Context) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	continents := make([]string, 0)
	for _, dest := range s.destinations {
		if _, ok := seen[dest.Continent]; ok {
			continue
		}
		seen[dest.Continent] = struct{}{}
		continents = append(continents, dest.Continent)
	}
	sort.Strings(continents)
	return continents, nil
}

func (r *DestinationRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.destinations)), nil
}

func applyDestinationInput(dest *domain.Destination, input domain.DestinationInput, now time.Time) {
	dest.Name = input.Name
	dest.Country = input.Country
	dest.Continent = input.Continent
	dest.Description = input.Description
	dest.ImageURL = input.ImageURL
	dest.Rating = input.Rating
	dest.PriceCategory = input.PriceCategory
	dest.Latitude = input.Latitude
	dest.Longitude = input.Longitude
	dest.Activities = append(domain.StringList{}, input.Activities...)
	dest.WeatherInfo = make(domain.SeasonNotes, len(input.WeatherInfo))
	for k, v := range input.WeatherInfo {
		dest.WeatherInfo[k] = v
	}
	dest.UpdatedAt = now
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
