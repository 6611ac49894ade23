package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type PackageRepository struct {
	store *Store
}

func NewPackageRepo(store *Store) *PackageRepository {
	return &PackageRepository{store: store}
}

func (r *PackageRepository) Create(_ context.Context, input domain.PackageInput) (*domain.Package, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := s.resolveLinks(input.DestinationIDs)
	if err != nil {
		return nil, err
	}

	s.nextPackageID++
	now := s.now()
	pkg := &domain.Package{ID: s.nextPackageID, CreatedAt: now}
	applyPackageInput(pkg, input, now)
	s.packages[pkg.ID] = pkg
	s.packageLinks[pkg.ID] = links

	out := s.clonePackage(pkg)
	return &out, nil
}

func (r *PackageRepository) Update(_ context.Context, id int64, input domain.PackageInput) (*domain.Package, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	links, err := s.resolveLinks(input.DestinationIDs)
	if err != nil {
		return nil, err
	}
	applyPackageInput(pkg, input, s.now())
	s.packageLinks[id] = links

	out := s.clonePackage(pkg)
	return &out, nil
}

func (r *PackageRepository) SetImage(_ context.Context, id int64, imageURL string) (*domain.Package, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	pkg.ImageURL = imageURL
	pkg.UpdatedAt = s.now()

	out := s.clonePackage(pkg)
	return &out, nil
}

func (r *PackageRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.packages[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.packages, id)
	delete(s.packageLinks, id)
	return nil
}

func (r *PackageRepository) FindByID(_ context.Context, id int64) (*domain.Package, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := s.clonePackage(pkg)
	return &out, nil
}

func (r *PackageRepository) List(_ context.Context, filter domain.PackageFilter) ([]domain.Package, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Package, 0)
	for _, id := range sortedKeys(s.packages) {
		if pkg := s.packages[id]; filter.Matches(pkg) {
			matched = append(matched, s.clonePackage(pkg))
		}
	}
	start, end := filter.Page.Window(len(matched))
	return matched[start:end], nil
}

func (r *PackageRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.packages)), nil
}

// resolveLinks deduplicates and sorts the ids and checks that every destination exists.
func (s *Store) resolveLinks(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	links := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.destinations[id]; !ok {
			return nil, ports.ErrMissingReference
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, id)
	}
	sort.Slice(links, func(i, j int) bool { return links[i] < links[j] })
	return links, nil
}

func applyPackageInput(pkg *domain.Package, input domain.PackageInput, now time.Time) {
	pkg.Name = input.Name
	pkg.Description = input.Description
	pkg.ImageURL = input.ImageURL
	pkg.Duration = input.Duration
	pkg.Price = input.Price
	pkg.DiscountPrice = nil
	if input.DiscountPrice != nil {
		discount := *input.DiscountPrice
		pkg.DiscountPrice = &discount
	}
	pkg.IsPromoted = input.IsPromoted
	pkg.IncludedServices = append(domain.StringList{}, input.IncludedServices...)
	pkg.Itinerary = append(domain.Itinerary{}, input.Itinerary...)
	pkg.UpdatedAt = now
}

var _ ports.PackageRepository = (*PackageRepository)(nil)
