package service

import (
	"context"
	"sort"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
	"github.com/gounamur/travel-backend/internal/util"
)

const (
	featuredDestinations = 4
	featuredPackages     = 2
)

type SearchResult struct {
	Query        string
	Destinations []domain.Destination
	Packages     []domain.Package
}

type FeaturedCatalog struct {
	Destinations []domain.Destination
	Packages     []domain.Package
}

// CatalogService answers queries that span destinations and packages.
type CatalogService struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
}

func NewCatalogService(destinations ports.DestinationRepository, packages ports.PackageRepository) *CatalogService {
	return &CatalogService{destinations: destinations, packages: packages}
}

// Search matches one free-text term against both collections. A term that is empty after
// sanitising returns empty results instead of the whole catalog.
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchResult, error) {
	term := util.SanitizeSearchTerm(query)
	result := &SearchResult{
		Query:        term,
		Destinations: []domain.Destination{},
		Packages:     []domain.Package{},
	}
	if term == "" {
		return result, nil
	}

	page := domain.Page{Limit: domain.DefaultPageLimit}
	destinations, err := s.destinations.List(ctx, domain.DestinationFilter{Search: term, Page: page})
	if err != nil {
		return nil, err
	}
	packages, err := s.packages.List(ctx, domain.PackageFilter{Search: term, Page: page})
	if err != nil {
		return nil, err
	}
	result.Destinations = destinations
	result.Packages = packages
	return result, nil
}

// Featured returns the first destinations of the catalog and the packages to highlight,
// promoted ones first.
func (s *CatalogService) Featured(ctx context.Context) (*FeaturedCatalog, error) {
	destinations, err := s.destinations.List(ctx, domain.DestinationFilter{Page: domain.Page{Limit: featuredDestinations}})
	if err != nil {
		return nil, err
	}
	packages, err := s.packages.List(ctx, domain.PackageFilter{Page: domain.Page{Limit: domain.MaxPageLimit}})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].IsPromoted && !packages[j].IsPromoted
	})
	if len(packages) > featuredPackages {
		packages = packages[:featuredPackages]
	}
	return &FeaturedCatalog{Destinations: destinations, Packages: packages}, nil
}
