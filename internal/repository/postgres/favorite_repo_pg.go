package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	const query = `
		INSERT INTO favorites (user_id, destination_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, destination_id) DO NOTHING
		RETURNING id, user_id, destination_id, created_at
	`

	var favorite domain.Favorite
	if err := r.db.GetContext(ctx, &favorite, query, userID, destinationID); err != nil {
		// no row back means the conflict clause swallowed the insert
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrDuplicate
		}
		return nil, translateError(err)
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, destinationID int64) error {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND destination_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, destinationID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListDestinations(ctx context.Context, userID int64) ([]domain.Destination, error) {
	query := `
		SELECT ` + columnList("d", destinationColumns) + `
		FROM favorites f
		JOIN destinations d ON d.id = f.destination_id
		WHERE f.user_id = $1
		ORDER BY f.id ASC
	`

	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query, userID); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *FavoriteRepository) CountByDestination(ctx context.Context, destinationID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM favorites
		WHERE destination_id = $1
	`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, destinationID); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
