package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, email, name, created_at, updated_at`

func scanUser(row pgx.Row) (*types.User, error) {
	u := &types.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return scanUser(s.db.QueryRow(ctx, query, email))
}
