package domain

import (
	"time"
)

type PriceCategory string

const (
	PriceCategoryBudget   PriceCategory = "budget"
	PriceCategoryModerate PriceCategory = "moderate"
	PriceCategoryLuxury   PriceCategory = "luxury"
)

func (p PriceCategory) Valid() bool {
	switch p {
	case PriceCategoryBudget, PriceCategoryModerate, PriceCategoryLuxury:
		return true
	}
	return false
}

// BaseDailyPrice is the indicative price per traveller per day used on booking quotes.
func (p PriceCategory) BaseDailyPrice() float64 {
	switch p {
	case PriceCategoryBudget:
		return 50
	case PriceCategoryLuxury:
		return 200
	default:
		return 100
	}
}

// Continents accepted for catalog entries.
var Continents = []string{
	"Europe",
	"Asie",
	"Afrique",
	"Amérique du Nord",
	"Amérique du Sud",
	"Océanie",
	"Antarctique",
}

type Destination struct {
	ID            int64         `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	Country       string        `db:"country" json:"country"`
	Continent     string        `db:"continent" json:"continent"`
	Description   string        `db:"description" json:"description"`
	ImageURL      string        `db:"image_url" json:"image_url"`
	Rating        float64       `db:"rating" json:"rating"`
	PriceCategory PriceCategory `db:"price_category" json:"price_category"`
	Latitude      float64       `db:"latitude" json:"-"`
	Longitude     float64       `db:"longitude" json:"-"`
	Activities    StringList    `db:"activities" json:"activities"`
	WeatherInfo   SeasonNotes   `db:"weather_info" json:"weather_info"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// DestinationInput carries every writable destination field. Updates replace all of them.
type DestinationInput struct {
	Name          string
	Country       string
	Continent     string
	Description   string
	ImageURL      string
	Rating        float64
	PriceCategory PriceCategory
	Latitude      float64
	Longitude     float64
	Activities    []string
	WeatherInfo   map[string]string
}

// DestinationBrief is the compact destination shape embedded in packages.
type DestinationBrief struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Country  string `db:"country" json:"country"`
	ImageURL string `db:"image_url" json:"image_url"`
}

func (d *Destination) Brief() DestinationBrief {
	return DestinationBrief{ID: d.ID, Name: d.Name, Country: d.Country, ImageURL: d.ImageURL}
}
