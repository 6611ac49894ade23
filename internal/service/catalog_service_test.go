package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/memory"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type countingDestinationRepo struct {
	ports.DestinationRepository
	listCalls int
}

func (r *countingDestinationRepo) List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	r.listCalls++
	return r.DestinationRepository.List(ctx, filter)
}

func newParisBaliStore(t *testing.T) (*memory.Store, []*domain.Destination) {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewDestinationRepo(store)
	var out []*domain.Destination
	for _, in := range []domain.DestinationInput{
		{Name: "Paris", Country: "France", Continent: "Europe", Description: "La ville de l'amour avec ses monuments emblématiques.", Rating: 4.8, PriceCategory: domain.PriceCategoryLuxury, Latitude: 48.8566, Longitude: 2.3522},
		{Name: "Bali", Country: "Indonésie", Continent: "Asie", Description: "Île paradisiaque.", Rating: 4.7, PriceCategory: domain.PriceCategoryModerate, Latitude: -8.4095, Longitude: 115.1889},
	} {
		d, err := repo.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("create %s: %v", in.Name, err)
		}
		out = append(out, d)
	}
	return store, out
}

func names(dests []domain.Destination) []string {
	out := make([]string, len(dests))
	for i, d := range dests {
		out[i] = d.Name
	}
	return out
}

func TestDestinationService_List_Filters(t *testing.T) {
	store, _ := newParisBaliStore(t)
	svc := NewDestinationService(memory.NewDestinationRepo(store), nil)
	ctx := context.Background()
	rating := 4.75

	tests := []struct {
		name   string
		filter domain.DestinationFilter
		want   []string
	}{
		{name: "no filter", filter: domain.DestinationFilter{}, want: []string{"Paris", "Bali"}},
		{name: "continent", filter: domain.DestinationFilter{Continents: []string{"Europe"}}, want: []string{"Paris"}},
		{name: "min rating", filter: domain.DestinationFilter{MinRating: &rating}, want: []string{"Paris"}},
		{name: "search is case insensitive", filter: domain.DestinationFilter{Search: "bali"}, want: []string{"Bali"}},
		{name: "price category", filter: domain.DestinationFilter{PriceCategories: []string{"moderate"}}, want: []string{"Bali"}},
		{name: "skip", filter: domain.DestinationFilter{Page: domain.Page{Skip: 1}}, want: []string{"Bali"}},
		{name: "skip past end", filter: domain.DestinationFilter{Page: domain.Page{Skip: 10}}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := svc.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, gotNames)
			}
			for i := range gotNames {
				if gotNames[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, gotNames)
				}
			}
		})
	}
}

func TestDestinationService_List_PageDefaults(t *testing.T) {
	store, _ := newParisBaliStore(t)
	svc := NewDestinationService(memory.NewDestinationRepo(store), nil)

	_, page, err := svc.List(context.Background(), domain.DestinationFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Limit != domain.DefaultPageLimit || page.Skip != 0 {
		t.Fatalf("unexpected default page %+v", page)
	}

	_, page, err = svc.List(context.Background(), domain.DestinationFilter{Page: domain.Page{Limit: 5000}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Limit != domain.MaxPageLimit {
		t.Fatalf("expected limit capped to %d, got %d", domain.MaxPageLimit, page.Limit)
	}
}

func TestDestinationService_List_InvalidInputSkipsRepository(t *testing.T) {
	store, _ := newParisBaliStore(t)
	repo := &countingDestinationRepo{DestinationRepository: memory.NewDestinationRepo(store)}
	svc := NewDestinationService(repo, nil)

	high, negative := 5.5, -1.0
	for _, filter := range []domain.DestinationFilter{
		{MinRating: &high},
		{MinRating: &negative},
		{Page: domain.Page{Skip: -1}},
		{Page: domain.Page{Limit: -3}},
	} {
		if _, _, err := svc.List(context.Background(), filter); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", filter, err)
		}
	}
	if repo.listCalls != 0 {
		t.Fatalf("expected repository to be skipped, got %d calls", repo.listCalls)
	}
}

func TestDestinationService_GetUnknown(t *testing.T) {
	svc := NewDestinationService(memory.NewDestinationRepo(memory.NewStore()), nil)
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound on delete, got %v", err)
	}
}

func TestDestinationService_CreateValidation(t *testing.T) {
	svc := NewDestinationService(memory.NewDestinationRepo(memory.NewStore()), nil)
	valid := domain.DestinationInput{
		Name: " Lisbonne ", Country: "Portugal", Continent: "Europe",
		Rating: 4.4, PriceCategory: domain.PriceCategoryModerate, Latitude: 38.72, Longitude: -9.14,
	}

	dest, err := svc.Create(context.Background(), valid)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if dest.Name != "Lisbonne" || dest.ID == 0 {
		t.Fatalf("unexpected destination %+v", dest)
	}

	bad := []func(in *domain.DestinationInput){
		func(in *domain.DestinationInput) { in.Name = "  " },
		func(in *domain.DestinationInput) { in.Continent = "Atlantide" },
		func(in *domain.DestinationInput) { in.Rating = 6 },
		func(in *domain.DestinationInput) { in.PriceCategory = "cheap" },
		func(in *domain.DestinationInput) { in.Latitude = 120 },
	}
	for i, mutate := range bad {
		in := valid
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestPackageService_ListAndValidation(t *testing.T) {
	store, dests := newParisBaliStore(t)
	svc := NewPackageService(memory.NewPackageRepo(store), nil)
	ctx := context.Background()
	discount := 1999.0

	pkg, err := svc.Create(ctx, domain.PackageInput{
		Name: "Tour d'Europe", Duration: 10, Price: 2500, DiscountPrice: &discount, IsPromoted: true,
		Itinerary:      []domain.ItineraryDay{{Day: 1, Title: "Arrivée à Paris"}},
		DestinationIDs: []int64{dests[0].ID},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(pkg.Destinations) != 1 || pkg.Destinations[0].Name != "Paris" {
		t.Fatalf("expected Paris brief, got %+v", pkg.Destinations)
	}
	if pkg.EffectivePrice() != 1999 {
		t.Fatalf("expected effective price 1999, got %v", pkg.EffectivePrice())
	}

	minPrice, maxPrice := 3000.0, 1000.0
	if _, _, err := svc.List(ctx, domain.PackageFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted price range, got %v", err)
	}

	minDuration := 12
	got, _, err := svc.List(ctx, domain.PackageFilter{MinDuration: &minDuration})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no package of 12+ days, got %d", len(got))
	}

	if _, err := svc.Create(ctx, domain.PackageInput{Name: "x", Duration: 3, Price: 100, DestinationIDs: []int64{404}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected unknown destination to be a validation error, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.PackageInput{Name: "x", Duration: 3, Price: 100, Itinerary: []domain.ItineraryDay{{Day: 4}}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected itinerary day outside duration to fail, got %v", err)
	}
	if _, err := svc.Get(ctx, 404); !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestCatalogService_Search(t *testing.T) {
	store, dests := newParisBaliStore(t)
	packages := memory.NewPackageRepo(store)
	if _, err := packages.Create(context.Background(), domain.PackageInput{
		Name: "Découverte de l'Asie", Description: "Tokyo et Bali", Duration: 14, Price: 2250,
		DestinationIDs: []int64{dests[1].ID},
	}); err != nil {
		t.Fatalf("create package: %v", err)
	}
	svc := NewCatalogService(memory.NewDestinationRepo(store), packages)

	result, err := svc.Search(context.Background(), "  BALI<script>  ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Query != "BALIscript" {
		t.Fatalf("expected sanitised query, got %q", result.Query)
	}
	if len(result.Destinations) != 0 {
		t.Fatalf("expected sanitised term to miss, got %v", names(result.Destinations))
	}

	result, err = svc.Search(context.Background(), "bali")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Destinations) != 1 || result.Destinations[0].Name != "Bali" {
		t.Fatalf("expected Bali, got %v", names(result.Destinations))
	}
	if len(result.Packages) != 1 {
		t.Fatalf("expected the Asia package, got %d packages", len(result.Packages))
	}

	empty, err := svc.Search(context.Background(), "<>")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(empty.Destinations) != 0 || len(empty.Packages) != 0 {
		t.Fatalf("expected empty term to return nothing")
	}
}

func TestCatalogService_FeaturedPutsPromotedFirst(t *testing.T) {
	store := memory.NewStore()
	packages := memory.NewPackageRepo(store)
	for _, in := range []domain.PackageInput{
		{Name: "A", Duration: 3, Price: 100},
		{Name: "B", Duration: 3, Price: 100},
		{Name: "C", Duration: 3, Price: 100, IsPromoted: true},
	} {
		if _, err := packages.Create(context.Background(), in); err != nil {
			t.Fatalf("create package: %v", err)
		}
	}
	svc := NewCatalogService(memory.NewDestinationRepo(store), packages)

	featured, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured returned error: %v", err)
	}
	if len(featured.Packages) != 2 || featured.Packages[0].Name != "C" || featured.Packages[1].Name != "A" {
		t.Fatalf("unexpected featured packages %+v", featured.Packages)
	}
	if len(featured.Destinations) != 0 {
		t.Fatalf("expected no destinations")
	}
}
