package service

import (
	"fmt"
	"strings"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/util"
)

func validateDestinationInput(input domain.DestinationInput) (domain.DestinationInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Country = strings.TrimSpace(input.Country)
	input.Continent = strings.TrimSpace(input.Continent)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)

	switch {
	case input.Name == "":
		return input, fmt.Errorf("%w: name is required", ErrValidation)
	case input.Country == "":
		return input, fmt.Errorf("%w: country is required", ErrValidation)
	case !isKnownContinent(input.Continent):
		return input, fmt.Errorf("%w: continent must be one of %s", ErrValidation, strings.Join(domain.Continents, ", "))
	case !util.ValidRating(input.Rating):
		return input, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	case !input.PriceCategory.Valid():
		return input, fmt.Errorf("%w: price_category must be budget, moderate or luxury", ErrValidation)
	case !util.ValidCoordinates(input.Latitude, input.Longitude):
		return input, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	input.Activities = cleanValues(input.Activities)
	return input, nil
}

func validatePackageInput(input domain.PackageInput) (domain.PackageInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)

	switch {
	case input.Name == "":
		return input, fmt.Errorf("%w: name is required", ErrValidation)
	case !util.ValidDuration(input.Duration):
		return input, fmt.Errorf("%w: duration must be between 1 and 365 days", ErrValidation)
	case !util.ValidPrice(input.Price):
		return input, fmt.Errorf("%w: price must be greater than 0 and at most 50000", ErrValidation)
	}
	if input.DiscountPrice != nil && (*input.DiscountPrice <= 0 || *input.DiscountPrice > input.Price) {
		return input, fmt.Errorf("%w: discount_price must be greater than 0 and at most price", ErrValidation)
	}
	for _, day := range input.Itinerary {
		if day.Day < 1 || day.Day > input.Duration {
			return input, fmt.Errorf("%w: itinerary day %d is outside the package duration", ErrValidation, day.Day)
		}
	}
	for _, id := range input.DestinationIDs {
		if id <= 0 {
			return input, fmt.Errorf("%w: destination ids must be positive", ErrValidation)
		}
	}

	input.IncludedServices = cleanValues(input.IncludedServices)
	return input, nil
}

func isKnownContinent(continent string) bool {
	for _, c := range domain.Continents {
		if c == continent {
			return true
		}
	}
	return false
}
