package domain

import "strings"

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// Page selects a window of an ordered result set.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) Window(total int) (start, end int) {
	start = p.Skip
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// DestinationFilter holds the optional destination predicates. A zero or nil field means the
// dimension is not constrained. Search is expected to be sanitised already.
type DestinationFilter struct {
	Search          string
	Continents      []string
	PriceCategories []string
	MinRating       *float64
	Page            Page
}

func (f DestinationFilter) Matches(d *Destination) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !containsFold(d.Name, term) && !containsFold(d.Country, term) && !containsFold(d.Description, term) {
			return false
		}
	}
	if len(f.Continents) > 0 && !contains(f.Continents, d.Continent) {
		return false
	}
	if len(f.PriceCategories) > 0 && !contains(f.PriceCategories, string(d.PriceCategory)) {
		return false
	}
	if f.MinRating != nil && d.Rating < *f.MinRating {
		return false
	}
	return true
}

type PackageFilter struct {
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	MinDuration *int
	Page        Page
}

func (f PackageFilter) Matches(p *Package) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !containsFold(p.Name, term) && !containsFold(p.Description, term) {
			return false
		}
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinDuration != nil && p.Duration < *f.MinDuration {
		return false
	}
	return true
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
