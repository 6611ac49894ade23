package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/util"
)

// normalizePage applies the default window. A zero limit means the default page size; larger
// limits are capped.
func normalizePage(page domain.Page) (domain.Page, error) {
	if page.Skip < 0 {
		return page, fmt.Errorf("%w: skip must be greater than or equal to 0", ErrValidation)
	}
	if page.Limit < 0 {
		return page, fmt.Errorf("%w: limit must be greater than 0", ErrValidation)
	}
	if page.Limit == 0 {
		page.Limit = domain.DefaultPageLimit
	}
	if page.Limit > domain.MaxPageLimit {
		page.Limit = domain.MaxPageLimit
	}
	return page, nil
}

func normalizeDestinationFilter(filter domain.DestinationFilter) (domain.DestinationFilter, error) {
	filter.Search = util.SanitizeSearchTerm(filter.Search)
	filter.Continents = cleanValues(filter.Continents)
	filter.PriceCategories = cleanValues(filter.PriceCategories)

	if filter.MinRating != nil {
		if !util.ValidRating(*filter.MinRating) {
			return filter, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
		}
		rating := *filter.MinRating
		filter.MinRating = &rating
	}

	page, err := normalizePage(filter.Page)
	if err != nil {
		return filter, err
	}
	filter.Page = page
	return filter, nil
}

func normalizePackageFilter(filter domain.PackageFilter) (domain.PackageFilter, error) {
	filter.Search = util.SanitizeSearchTerm(filter.Search)

	if filter.MinPrice != nil && (*filter.MinPrice < 0 || math.IsNaN(*filter.MinPrice)) {
		return filter, fmt.Errorf("%w: min_price must be greater than or equal to 0", ErrValidation)
	}
	if filter.MaxPrice != nil && (*filter.MaxPrice < 0 || math.IsNaN(*filter.MaxPrice)) {
		return filter, fmt.Errorf("%w: max_price must be greater than or equal to 0", ErrValidation)
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, fmt.Errorf("%w: min_price cannot be greater than max_price", ErrValidation)
	}
	if filter.MinDuration != nil && *filter.MinDuration < 0 {
		return filter, fmt.Errorf("%w: min_duration must be greater than or equal to 0", ErrValidation)
	}

	page, err := normalizePage(filter.Page)
	if err != nil {
		return filter, err
	}
	filter.Page = page
	return filter, nil
}

func cleanValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
