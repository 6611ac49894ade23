package domain

import "time"

type Package struct {
	ID               int64              `db:"id" json:"id"`
	Name             string             `db:"name" json:"name"`
	Description      string             `db:"description" json:"description"`
	ImageURL         string             `db:"image_url" json:"image_url"`
	Duration         int                `db:"duration" json:"duration"`
	Price            float64            `db:"price" json:"price"`
	DiscountPrice    *float64           `db:"discount_price" json:"discount_price"`
	IsPromoted       bool               `db:"is_promoted" json:"is_promoted"`
	IncludedServices StringList         `db:"included_services" json:"included_services"`
	Itinerary        Itinerary          `db:"itinerary" json:"itinerary"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at" json:"updated_at"`
	Destinations     []DestinationBrief `db:"-" json:"destinations"`
}

// EffectivePrice is the discounted price when one is set.
func (p *Package) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type PackageInput struct {
	Name             string
	Description      string
	ImageURL         string
	Duration         int
	Price            float64
	DiscountPrice    *float64
	IsPromoted       bool
	IncludedServices []string
	Itinerary        []ItineraryDay
	DestinationIDs   []int64
}
