package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
	"github.com/gounamur/travel-backend/internal/util"
)

var destinationColumns = []string{
	"id", "name", "country", "continent", "description", "image_url", "rating",
	"price_category", "latitude", "longitude", "activities", "weather_info",
	"created_at", "updated_at",
}

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Create(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	query := `
		INSERT INTO destinations (
			name, country, continent, description, image_url, rating,
			price_category, latitude, longitude, activities, weather_info
		) VALUES (
			:name, :country, :continent, :description, :image_url, :rating,
			:price_category, :latitude, :longitude, :activities, :weather_info
		)
		RETURNING ` + columnList("", destinationColumns)

	rows, err := r.db.NamedQueryContext(ctx, query, destinationArgs(input))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, translateError(err)
		}
		return nil, ports.ErrNotFound
	}
	var dest domain.Destination
	if err := rows.StructScan(&dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) Update(ctx context.Context, id int64, input domain.DestinationInput) (*domain.Destination, error) {
	query := `
		UPDATE destinations SET
			name = $2, country = $3, continent = $4, description = $5, image_url = $6,
			rating = $7, price_category = $8, latitude = $9, longitude = $10,
			activities = $11, weather_info = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + columnList("", destinationColumns)

	var dest domain.Destination
	err := r.db.GetContext(ctx, &dest, query, id,
		input.Name, input.Country, input.Continent, input.Description, input.ImageURL,
		input.Rating, string(input.PriceCategory), input.Latitude, input.Longitude,
		domain.StringList(input.Activities), domain.SeasonNotes(input.WeatherInfo),
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &dest, nil
}

func (r *DestinationRepository) SetImage(ctx context.Context, id int64, imageURL string) (*domain.Destination, error) {
	query := `
		UPDATE destinations SET image_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + columnList("", destinationColumns)

	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id, imageURL); err != nil {
		return nil, translateError(err)
	}
	return &dest, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE destination_id = $1`, id); err != nil {
		return rollback(tx, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM package_destinations WHERE destination_id = $1`, id); err != nil {
		return rollback(tx, err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return rollback(tx, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return rollback(tx, err)
	}
	if affected == 0 {
		return rollback(tx, ports.ErrNotFound)
	}
	return tx.Commit()
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	query := `SELECT ` + columnList("", destinationColumns) + ` FROM destinations WHERE id = $1`

	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, translateError(err)
	}
	return &dest, nil
}

func (r *DestinationRepository) List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	base := `SELECT ` + columnList("", destinationColumns) + ` FROM destinations`
	query, args := destinationPredicates(filter).paged(base, "id ASC", filter.Page.Limit, filter.Page.Skip)

	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query, args...); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) ListContinents(ctx context.Context) ([]string, error) {
	continents := make([]string, 0)
	if err := r.db.SelectContext(ctx, &continents, `SELECT DISTINCT continent FROM destinations ORDER BY continent`); err != nil {
		return nil, err
	}
	return continents, nil
}

func (r *DestinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM destinations`); err != nil {
		return 0, err
	}
	return count, nil
}

func destinationPredicates(filter domain.DestinationFilter) predicates {
	var p predicates
	if filter.Search != "" {
		pattern := util.LikeContains(filter.Search)
		p.add("(name ILIKE ? OR country ILIKE ? OR description ILIKE ?)", pattern, pattern, pattern)
	}
	if len(filter.Continents) > 0 {
		p.add("continent = ANY(?)", pq.StringArray(filter.Continents))
	}
	if len(filter.PriceCategories) > 0 {
		p.add("price_category = ANY(?)", pq.StringArray(filter.PriceCategories))
	}
	if filter.MinRating != nil {
		p.add("rating >= ?", *filter.MinRating)
	}
	return p
}

func destinationArgs(input domain.DestinationInput) map[string]any {
	return map[string]any{
		"name":           input.Name,
		"country":        input.Country,
		"continent":      input.Continent,
		"description":    input.Description,
		"image_url":      input.ImageURL,
		"rating":         input.Rating,
		"price_category": string(input.PriceCategory),
		"latitude":       input.Latitude,
		"longitude":      input.Longitude,
		"activities":     domain.StringList(input.Activities),
		"weather_info":   domain.SeasonNotes(input.WeatherInfo),
	}
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
