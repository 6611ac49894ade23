package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

//go:embed seed/catalog.json
var defaultCatalog []byte

type seedCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type seedDestination struct {
	Name          string               `json:"name"`
	Country       string               `json:"country"`
	Continent     string               `json:"continent"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"image_url"`
	Rating        float64              `json:"rating"`
	PriceCategory domain.PriceCategory `json:"price_category"`
	Coordinates   seedCoordinates      `json:"coordinates"`
	Activities    []string             `json:"activities"`
	WeatherInfo   map[string]string    `json:"weather_info"`
}

type seedPackage struct {
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	ImageURL         string                `json:"image_url"`
	Duration         int                   `json:"duration"`
	Price            float64               `json:"price"`
	DiscountPrice    *float64              `json:"discount_price"`
	IsPromoted       bool                  `json:"is_promoted"`
	IncludedServices []string              `json:"included_services"`
	Itinerary        []domain.ItineraryDay `json:"itinerary"`
	DestinationNames []string              `json:"destination_names"`
}

type seedCatalog struct {
	Destinations []seedDestination `json:"destinations"`
	Packages     []seedPackage     `json:"packages"`
}

// SeedReport counts the rows a seeding run inserted.
type SeedReport struct {
	Destinations int
	Packages     int
}

// CatalogSeeder fills an empty catalog with the bundled destinations and packages.
type CatalogSeeder struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	data         []byte
}

func NewCatalogSeeder(destinations ports.DestinationRepository, packages ports.PackageRepository) *CatalogSeeder {
	return &CatalogSeeder{destinations: destinations, packages: packages, data: defaultCatalog}
}

// Seed inserts each collection only when it is empty, so running it on every start is safe.
// Packages reference destinations by name.
func (s *CatalogSeeder) Seed(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	var catalog seedCatalog
	if err := json.Unmarshal(s.data, &catalog); err != nil {
		return report, fmt.Errorf("decode seed catalog: %w", err)
	}

	destinationCount, err := s.destinations.Count(ctx)
	if err != nil {
		return report, err
	}
	if destinationCount == 0 {
		for _, d := range catalog.Destinations {
			_, err := s.destinations.Create(ctx, domain.DestinationInput{
				Name:          d.Name,
				Country:       d.Country,
				Continent:     d.Continent,
				Description:   d.Description,
				ImageURL:      d.ImageURL,
				Rating:        d.Rating,
				PriceCategory: d.PriceCategory,
				Latitude:      d.Coordinates.Lat,
				Longitude:     d.Coordinates.Lng,
				Activities:    d.Activities,
				WeatherInfo:   d.WeatherInfo,
			})
			if err != nil {
				return report, fmt.Errorf("seed destination %q: %w", d.Name, err)
			}
			report.Destinations++
		}
	}

	packageCount, err := s.packages.Count(ctx)
	if err != nil {
		return report, err
	}
	if packageCount > 0 || len(catalog.Packages) == 0 {
		return report, nil
	}

	existing, err := s.destinations.List(ctx, domain.DestinationFilter{Page: domain.Page{Limit: domain.MaxPageLimit}})
	if err != nil {
		return report, err
	}
	idByName := make(map[string]int64, len(existing))
	for _, d := range existing {
		idByName[d.Name] = d.ID
	}

	for _, p := range catalog.Packages {
		ids := make([]int64, 0, len(p.DestinationNames))
		for _, name := range p.DestinationNames {
			if id, ok := idByName[name]; ok {
				ids = append(ids, id)
			}
		}
		_, err := s.packages.Create(ctx, domain.PackageInput{
			Name:             p.Name,
			Description:      p.Description,
			ImageURL:         p.ImageURL,
			Duration:         p.Duration,
			Price:            p.Price,
			DiscountPrice:    p.DiscountPrice,
			IsPromoted:       p.IsPromoted,
			IncludedServices: p.IncludedServices,
			Itinerary:        p.Itinerary,
			DestinationIDs:   ids,
		})
		if err != nil {
			return report, fmt.Errorf("seed package %q: %w", p.Name, err)
		}
		report.Packages++
	}
	return report, nil
}
