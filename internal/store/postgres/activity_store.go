package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ActivityStore implements store.ActivityStore using PostgreSQL.
type ActivityStore struct {
	db DB
}

func NewActivityStore(db DB) *ActivityStore {
	return &ActivityStore{db: db}
}

const activityColumns = `id, trip_id, name, category, location, address, latitude, longitude, price, currency, duration_minutes, website, phone, opening_hours, rating, notes, created_at, updated_at`

func scanActivity(row pgx.Row) (*types.Activity, error) {
	a := &types.Activity{}
	err := row.Scan(
		&a.ID,
		&a.TripID,
		&a.Name,
		&a.Category,
		&a.Location,
		&a.Address,
		&a.Latitude,
		&a.Longitude,
		&a.Price,
		&a.Currency,
		&a.DurationMinutes,
		&a.Website,
		&a.Phone,
		&a.OpeningHours,
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

func (s *ActivityStore) CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error) {
	query := `
		INSERT INTO activities (trip_id, name, category, location, address, latitude, longitude, price, currency, duration_minutes, website, phone, opening_hours, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + activityColumns

	row := s.db.QueryRow(ctx, query,
		a.TripID, a.Name, a.Category, a.Location, a.Address,
		a.Latitude, a.Longitude, a.Price, a.Currency, a.DurationMinutes,
		a.Website, a.Phone, a.OpeningHours, a.Rating, a.Notes,
	)
	return scanActivity(row)
}

func (s *ActivityStore) GetActivity(ctx context.Context, tripID, id string) (*types.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND trip_id = $2`
	a, err := scanActivity(s.db.QueryRow(ctx, query, id, tripID))
	if err != nil {
		return nil, err
	}

	count, err := s.ScheduledReferenceCount(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.ScheduledCount = count
	return a, nil
}

func (s *ActivityStore) ListActivities(ctx context.Context, tripID string, filter types.ActivityFilter, page types.PageRequest) ([]*types.Activity, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (name ILIKE $%d OR location ILIKE $%d OR notes ILIKE $%d)`, len(args), len(args), len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM activities %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		activityColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
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

func (s *ActivityStore) UpdateActivity(ctx context.Context, tripID, id string, update *types.ActivityUpdate) (*types.Activity, error) {
	query := `
		UPDATE activities
		SET name = COALESCE($1::text, name),
			category = COALESCE($2::text, category),
			location = COALESCE($3::text, location),
			address = COALESCE($4::text, address),
			latitude = COALESCE($5::double precision, latitude),
			longitude = COALESCE($6::double precision, longitude),
			price = COALESCE($7::numeric, price),
			currency = COALESCE($8::text, currency),
			duration_minutes = COALESCE($9::int, duration_minutes),
			website = COALESCE($10::text, website),
			phone = COALESCE($11::text, phone),
			opening_hours = COALESCE($12::text, opening_hours),
			rating = COALESCE($13::int, rating),
			notes = COALESCE($14::text, notes),
			updated_at = NOW()
		WHERE id = $15 AND trip_id = $16
		RETURNING ` + activityColumns

	row := s.db.QueryRow(ctx, query,
		update.Name, update.Category, update.Location, update.Address,
		update.Latitude, update.Longitude, update.Price, update.Currency,
		update.DurationMinutes, update.Website, update.Phone, update.OpeningHours,
		update.Rating, update.Notes, id, tripID,
	)
	return scanActivity(row)
}

func (s *ActivityStore) DeleteActivity(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM activities WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ScheduledReferenceCount counts itinerary entries referencing the activity.
func (s *ActivityStore) ScheduledReferenceCount(ctx context.Context, activityID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM itinerary_activities WHERE activity_id = $1`
	err := s.db.QueryRow(ctx, query, activityID).Scan(&count)
	return count, err
}
