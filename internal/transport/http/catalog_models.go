package http

import (
	"github.com/gounamur/travel-backend/internal/domain"
)

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90" example:"48.8566"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180" example:"2.3522"`
}

// DestinationResponse adds the derived fields clients display next to a destination.
type DestinationResponse struct {
	domain.Destination
	Coordinates    Coordinates `json:"coordinates"`
	BaseDailyPrice float64     `json:"base_daily_price" example:"200"`
}

func toDestinationResponse(d *domain.Destination) DestinationResponse {
	return DestinationResponse{
		Destination:    *d,
		Coordinates:    Coordinates{Lat: d.Latitude, Lng: d.Longitude},
		BaseDailyPrice: d.PriceCategory.BaseDailyPrice(),
	}
}

func toDestinationResponses(dests []domain.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(dests))
	for i := range dests {
		out = append(out, toDestinationResponse(&dests[i]))
	}
	return out
}

type PackageResponse struct {
	domain.Package
	EffectivePrice float64 `json:"effective_price" example:"1999"`
}

func toPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{Package: *p, EffectivePrice: p.EffectivePrice()}
}

func toPackageResponses(pkgs []domain.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, toPackageResponse(&pkgs[i]))
	}
	return out
}

// PageMeta echoes the window that was applied to a listing.
type PageMeta struct {
	Skip  int `json:"skip" example:"0"`
	Limit int `json:"limit" example:"100"`
	Count int `json:"count" example:"7"`
}

// DestinationRequest is the admin payload for creating or replacing a destination.
type DestinationRequest struct {
	Name          string            `json:"name" validate:"required,max=100" example:"Paris"`
	Country       string            `json:"country" validate:"required,max=100" example:"France"`
	Continent     string            `json:"continent" validate:"required" example:"Europe"`
	Description   string            `json:"description" validate:"max=2000"`
	ImageURL      string            `json:"image_url" validate:"omitempty,max=500"`
	Rating        float64           `json:"rating" validate:"gte=0,lte=5" example:"4.8"`
	PriceCategory string            `json:"price_category" validate:"required,oneof=budget moderate luxury" example:"luxury"`
	Coordinates   Coordinates       `json:"coordinates"`
	Activities    []string          `json:"activities" validate:"omitempty,dive,max=100"`
	WeatherInfo   map[string]string `json:"weather_info"`
}

func (r DestinationRequest) toInput() domain.DestinationInput {
	return domain.DestinationInput{
		Name:          r.Name,
		Country:       r.Country,
		Continent:     r.Continent,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Rating:        r.Rating,
		PriceCategory: domain.PriceCategory(r.PriceCategory),
		Latitude:      r.Coordinates.Lat,
		Longitude:     r.Coordinates.Lng,
		Activities:    r.Activities,
		WeatherInfo:   r.WeatherInfo,
	}
}

type ItineraryDayRequest struct {
	Day         int      `json:"day" validate:"gte=1" example:"1"`
	Title       string   `json:"title" validate:"required,max=200" example:"Arrivée à Paris"`
	Description string   `json:"description" validate:"max=2000"`
	Activities  []string `json:"activities"`
}

// PackageRequest is the admin payload for creating or replacing a package.
type PackageRequest struct {
	Name             string                `json:"name" validate:"required,max=200" example:"Tour d'Europe"`
	Description      string                `json:"description" validate:"max=5000"`
	ImageURL         string                `json:"image_url" validate:"omitempty,max=500"`
	Duration         int                   `json:"duration" validate:"gte=1,lte=365" example:"10"`
	Price            float64               `json:"price" validate:"gt=0,lte=50000" example:"2500"`
	DiscountPrice    *float64              `json:"discount_price" validate:"omitempty,gt=0" example:"1999"`
	IsPromoted       bool                  `json:"is_promoted"`
	IncludedServices []string              `json:"included_services"`
	Itinerary        []ItineraryDayRequest `json:"itinerary" validate:"omitempty,dive"`
	DestinationIDs   []int64               `json:"destination_ids" validate:"omitempty,dive,gt=0"`
}

func (r PackageRequest) toInput() domain.PackageInput {
	itinerary := make([]domain.ItineraryDay, 0, len(r.Itinerary))
	for _, day := range r.Itinerary {
		itinerary = append(itinerary, domain.ItineraryDay{
			Day:         day.Day,
			Title:       day.Title,
			Description: day.Description,
			Activities:  day.Activities,
		})
	}
	return domain.PackageInput{
		Name:             r.Name,
		Description:      r.Description,
		ImageURL:         r.ImageURL,
		Duration:         r.Duration,
		Price:            r.Price,
		DiscountPrice:    r.DiscountPrice,
		IsPromoted:       r.IsPromoted,
		IncludedServices: r.IncludedServices,
		Itinerary:        itinerary,
		DestinationIDs:   r.DestinationIDs,
	}
}
