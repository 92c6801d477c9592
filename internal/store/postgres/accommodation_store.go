package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// AccommodationStore implements store.AccommodationStore using PostgreSQL.
type AccommodationStore struct {
	db DB
}

func NewAccommodationStore(db DB) *AccommodationStore {
	return &AccommodationStore{db: db}
}

const accommodationColumns = `id, trip_id, name, type, address, latitude, longitude, check_in, check_out, price_per_night, total_price, currency, booking_url, confirmation_code, rating, notes, created_at, updated_at`

func scanAccommodation(row pgx.Row) (*types.Accommodation, error) {
	a := &types.Accommodation{}
	err := row.Scan(
		&a.ID,
		&a.TripID,
		&a.Name,
		&a.Type,
		&a.Address,
		&a.Latitude,
		&a.Longitude,
		&a.CheckIn,
		&a.CheckOut,
		&a.PricePerNight,
		&a.TotalPrice,
		&a.Currency,
		&a.BookingURL,
		&a.ConfirmationCode,
		&a.Rating,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AccommodationStore) CreateAccommodation(ctx context.Context, a *types.Accommodation) (*types.Accommodation, error) {
	query := `
		INSERT INTO accommodations (trip_id, name, type, address, latitude, longitude, check_in, check_out, price_per_night, total_price, currency, booking_url, confirmation_code, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + accommodationColumns

	row := s.db.QueryRow(ctx, query,
		a.TripID, a.Name, a.Type, a.Address, a.Latitude, a.Longitude,
		a.CheckIn, a.CheckOut, a.PricePerNight, a.TotalPrice, a.Currency,
		a.BookingURL, a.ConfirmationCode, a.Rating, a.Notes,
	)
	return scanAccommodation(row)
}

func (s *AccommodationStore) GetAccommodation(ctx context.Context, tripID, id string) (*types.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = $1 AND trip_id = $2`
	return scanAccommodation(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *AccommodationStore) ListAccommodations(ctx context.Context, tripID string, filter types.AccommodationFilter, page types.PageRequest) ([]*types.Accommodation, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (name ILIKE $%d OR address ILIKE $%d OR notes ILIKE $%d)`, len(args), len(args), len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM accommodations `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM accommodations %s ORDER BY check_in ASC LIMIT $%d OFFSET $%d`,
		accommodationColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *AccommodationStore) UpdateAccommodation(ctx context.Context, tripID, id string, update *types.AccommodationUpdate) (*types.Accommodation, error) {
	query := `
		UPDATE accommodations
		SET name = COALESCE($1::text, name),
			type = COALESCE($2::text, type),
			address = COALESCE($3::text, address),
			latitude = COALESCE($4::double precision, latitude),
			longitude = COALESCE($5::double precision, longitude),
			check_in = COALESCE($6::date, check_in),
			check_out = COALESCE($7::date, check_out),
			price_per_night = COALESCE($8::numeric, price_per_night),
			total_price = COALESCE($9::numeric, total_price),
			currency = COALESCE($10::text, currency),
			booking_url = COALESCE($11::text, booking_url),
			confirmation_code = COALESCE($12::text, confirmation_code),
			rating = COALESCE($13::int, rating),
			notes = COALESCE($14::text, notes),
			updated_at = NOW()
		WHERE id = $15 AND trip_id = $16
		RETURNING ` + accommodationColumns

	row := s.db.QueryRow(ctx, query,
		update.Name, update.Type, update.Address, update.Latitude, update.Longitude,
		update.CheckIn, update.CheckOut, update.PricePerNight, update.TotalPrice,
		update.Currency, update.BookingURL, update.ConfirmationCode, update.Rating,
		update.Notes, id, tripID,
	)
	return scanAccommodation(row)
}

func (s *AccommodationStore) DeleteAccommodation(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM accommodations WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CountOverlapping counts stays whose half-open [check_in, check_out) window
// intersects the given one. Touching endpoints do not intersect.
func (s *AccommodationStore) CountOverlapping(ctx context.Context, tripID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM accommodations
		WHERE trip_id = $1
		  AND ($2::uuid IS NULL OR id <> $2::uuid)
		  AND check_in < $4::date
		  AND $3::date < check_out`

	var count int64
	err := s.db.QueryRow(ctx, query, tripID, nullableID(excludeID), checkIn, checkOut).Scan(&count)
	return count, err
}
