package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

const userColumns = `id, email, name, password_hash, password_salt, role, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, name, password_hash, password_salt, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	var created domain.User
	err := r.db.GetContext(ctx, &created, query, user.Email, user.Name, user.PasswordHash, user.PasswordSalt, string(user.Role))
	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1`, id); err != nil {
		return rollback(tx, err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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

var _ ports.UserRepository = (*UserRepository)(nil)
