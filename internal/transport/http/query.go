package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/service"
)

func parseDestinationFilter(c echo.Context) (domain.DestinationFilter, error) {
	filter := domain.DestinationFilter{
		Search:          c.QueryParam("search"),
		Continents:      queryList(c, "continent"),
		PriceCategories: queryList(c, "price_category"),
	}

	var err error
	if filter.MinRating, err = queryFloat(c, "min_rating"); err != nil {
		return filter, err
	}
	if filter.Page, err = parsePage(c); err != nil {
		return filter, err
	}
	return filter, nil
}

func parsePackageFilter(c echo.Context) (domain.PackageFilter, error) {
	filter := domain.PackageFilter{Search: c.QueryParam("search")}

	var err error
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinDuration, err = queryInt(c, "min_duration"); err != nil {
		return filter, err
	}
	if filter.Page, err = parsePage(c); err != nil {
		return filter, err
	}
	return filter, nil
}

// parsePage reads skip and limit. An explicit limit must be positive; an absent one leaves the
// default to the service, which also owns the remaining range checks.
func parsePage(c echo.Context) (domain.Page, error) {
	var page domain.Page
	skip, err := queryInt(c, "skip")
	if err != nil {
		return page, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return page, err
	}
	if skip != nil {
		page.Skip = *skip
	}
	if limit != nil {
		if *limit <= 0 {
			return page, fmt.Errorf("%w: limit must be greater than 0", service.ErrValidation)
		}
		page.Limit = *limit
	}
	return page, nil
}

// queryList accepts both repeated parameters (?continent=Asie&continent=Europe) and a comma
// separated value (?continent=Asie,Europe).
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", service.ErrValidation, name)
	}
	return &v, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", service.ErrValidation, name)
	}
	return &v, nil
}

// pathID only checks the syntax. Ids that match nothing, zero and negatives included, are
// reported as not found by the lookup.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", service.ErrValidation, name)
	}
	return id, nil
}
