package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// TripStore implements store.TripStore using PostgreSQL.
type TripStore struct {
	db DB
}

func NewTripStore(db DB) *TripStore {
	return &TripStore{db: db}
}

const tripColumns = `id, user_id, name, destination, description, start_date, end_date, cover_image_url, status, created_at, updated_at`

func scanTrip(row pgx.Row) (*types.Trip, error) {
	t := &types.Trip{}
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Destination,
		&t.Description,
		&t.StartDate,
		&t.EndDate,
		&t.CoverImageURL,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TripStore) CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error) {
	query := `
		INSERT INTO trips (user_id, name, destination, description, start_date, end_date, cover_image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + tripColumns

	row := s.db.QueryRow(ctx, query,
		trip.UserID,
		trip.Name,
		trip.Destination,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.CoverImageURL,
		trip.Status,
	)
	return scanTrip(row)
}

// GetTripForUser is the ownership guard primitive. A trip owned by someone
// else scans the same as a missing trip: ErrNotFound.
func (s *TripStore) GetTripForUser(ctx context.Context, tripID, userID string) (*types.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND user_id = $2`
	return scanTrip(s.db.QueryRow(ctx, query, tripID, userID))
}

func (s *TripStore) ListTrips(ctx context.Context, userID string, filter types.TripFilter, page types.PageRequest) ([]*types.Trip, int64, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (name ILIKE $%d OR destination ILIKE $%d OR description ILIKE $%d)`, len(args), len(args), len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM trips %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		tripColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var trips []*types.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (s *TripStore) UpdateTrip(ctx context.Context, tripID string, update *types.TripUpdate) (*types.Trip, error) {
	query := `
		UPDATE trips
		SET name = COALESCE($1::text, name),
			destination = COALESCE($2::text, destination),
			description = COALESCE($3::text, description),
			start_date = COALESCE($4::date, start_date),
			end_date = COALESCE($5::date, end_date),
			cover_image_url = COALESCE($6::text, cover_image_url),
			status = COALESCE($7::text, status),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + tripColumns

	row := s.db.QueryRow(ctx, query,
		update.Name,
		update.Destination,
		update.Description,
		update.StartDate,
		update.EndDate,
		update.CoverImageURL,
		update.Status,
		tripID,
	)
	return scanTrip(row)
}

func (s *TripStore) DeleteTrip(ctx context.Context, tripID string) error {
	// Children are removed by the CASCADE constraints declared in the schema.
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
