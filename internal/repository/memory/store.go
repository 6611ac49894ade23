package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
)

type favoriteKey struct {
	userID        int64
	destinationID int64
}

// Store keeps every catalog table in process memory. All repositories built on the same
// Store share one lock, so multi-table operations are atomic.
type Store struct {
	mu sync.RWMutex

	destinations map[int64]*domain.Destination
	packages     map[int64]*domain.Package
	packageLinks map[int64][]int64
	users        map[int64]*domain.User
	favorites    map[favoriteKey]*domain.Favorite

	nextDestinationID int64
	nextPackageID     int64
	nextUserID        int64
	nextFavoriteID    int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		destinations: make(map[int64]*domain.Destination),
		packages:     make(map[int64]*domain.Package),
		packageLinks: make(map[int64][]int64),
		users:        make(map[int64]*domain.User),
		favorites:    make(map[favoriteKey]*domain.Favorite),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func cloneDestination(d *domain.Destination) domain.Destination {
	out := *d
	out.Activities = append(domain.StringList{}, d.Activities...)
	out.WeatherInfo = make(domain.SeasonNotes, len(d.WeatherInfo))
	for k, v := range d.WeatherInfo {
		out.WeatherInfo[k] = v
	}
	return out
}

// clonePackage copies the package and resolves its destination briefs. Callers hold the lock.
func (s *Store) clonePackage(p *domain.Package) domain.Package {
	out := *p
	if p.DiscountPrice != nil {
		discount := *p.DiscountPrice
		out.DiscountPrice = &discount
	}
	out.IncludedServices = append(domain.StringList{}, p.IncludedServices...)
	out.Itinerary = make(domain.Itinerary, len(p.Itinerary))
	for i, day := range p.Itinerary {
		day.Activities = append([]string{}, day.Activities...)
		out.Itinerary[i] = day
	}
	out.Destinations = []domain.DestinationBrief{}
	for _, id := range s.packageLinks[p.ID] {
		if d, ok := s.destinations[id]; ok {
			out.Destinations = append(out.Destinations, d.Brief())
		}
	}
	return out
}
