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

// ItineraryStore implements store.ItineraryStore using PostgreSQL.
type ItineraryStore struct {
	db DB
}

func NewItineraryStore(db DB) *ItineraryStore {
	return &ItineraryStore{db: db}
}

const itineraryColumns = `id, trip_id, date, notes, created_at, updated_at`

func scanItinerary(row pgx.Row) (*types.Itinerary, error) {
	it := &types.Itinerary{}
	err := row.Scan(&it.ID, &it.TripID, &it.Date, &it.Notes, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (s *ItineraryStore) CreateItinerary(ctx context.Context, it *types.Itinerary) (*types.Itinerary, error) {
	query := `
		INSERT INTO itineraries (trip_id, date, notes)
		VALUES ($1, $2, $3)
		RETURNING ` + itineraryColumns

	return scanItinerary(s.db.QueryRow(ctx, query, it.TripID, it.Date, it.Notes))
}

func (s *ItineraryStore) GetItinerary(ctx context.Context, tripID, id string) (*types.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = $1 AND trip_id = $2`
	it, err := scanItinerary(s.db.QueryRow(ctx, query, id, tripID))
	if err != nil {
		return nil, err
	}

	activities, err := s.ListItineraryActivities(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	it.Activities = activities
	return it, nil
}

func (s *ItineraryStore) ListItineraries(ctx context.Context, tripID string, filter types.ItineraryFilter, page types.PageRequest) ([]*types.Itinerary, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND notes ILIKE $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM itineraries `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM itineraries %s ORDER BY date ASC LIMIT $%d OFFSET $%d`,
		itineraryColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ItineraryStore) UpdateItinerary(ctx context.Context, tripID, id string, update *types.ItineraryUpdate) (*types.Itinerary, error) {
	query := `
		UPDATE itineraries
		SET date = COALESCE($1::date, date),
			notes = COALESCE($2::text, notes),
			updated_at = NOW()
		WHERE id = $3 AND trip_id = $4
		RETURNING ` + itineraryColumns

	return scanItinerary(s.db.QueryRow(ctx, query, update.Date, update.Notes, id, tripID))
}

func (s *ItineraryStore) DeleteItinerary(ctx context.Context, tripID, id string) error {
	// Activity entries and photos of this day go with it via CASCADE.
	tag, err := s.db.Exec(ctx, `DELETE FROM itineraries WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ExistsForDate checks the one-itinerary-per-calendar-date invariant.
// Comparison is on the date column itself, so time-of-day never matters.
func (s *ItineraryStore) ExistsForDate(ctx context.Context, tripID string, date time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM itineraries WHERE trip_id = $1 AND date = $2::date AND ($3::uuid IS NULL OR id <> $3::uuid))`
	var exists bool
	err := s.db.QueryRow(ctx, query, tripID, date, nullableID(excludeID)).Scan(&exists)
	return exists, err
}

func (s *ItineraryStore) GetItineraryStats(ctx context.Context, tripID string) (*types.ItineraryStats, error) {
	stats := &types.ItineraryStats{ActivityCategoryDist: map[string]int64{}}

	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM itineraries WHERE trip_id = $1`, tripID).Scan(&stats.Days); err != nil {
		return nil, err
	}

	query := `
		SELECT a.category, COUNT(*)
		FROM itinerary_activities ia
		JOIN itineraries i ON i.id = ia.itinerary_id
		JOIN activities a ON a.id = ia.activity_id
		WHERE i.trip_id = $1
		GROUP BY a.category`

	rows, err := s.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ActivityCategoryDist[category] = count
		stats.ScheduledActivities += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

const itineraryActivityColumns = `ia.id, ia.itinerary_id, ia.activity_id, ia.start_time, ia.end_time, ia.order_index, ia.notes, ia.created_at, ia.updated_at`

func scanItineraryActivity(row pgx.Row) (*types.ItineraryActivity, error) {
	ia := &types.ItineraryActivity{}
	err := row.Scan(
		&ia.ID,
		&ia.ItineraryID,
		&ia.ActivityID,
		&ia.StartTime,
		&ia.EndTime,
		&ia.OrderIndex,
		&ia.Notes,
		&ia.CreatedAt,
		&ia.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return ia, nil
}

func (s *ItineraryStore) CreateItineraryActivity(ctx context.Context, ia *types.ItineraryActivity) (*types.ItineraryActivity, error) {
	query := `
		INSERT INTO itinerary_activities AS ia (itinerary_id, activity_id, start_time, end_time, order_index, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itineraryActivityColumns

	row := s.db.QueryRow(ctx, query,
		ia.ItineraryID,
		ia.ActivityID,
		ia.StartTime,
		ia.EndTime,
		ia.OrderIndex,
		ia.Notes,
	)
	return scanItineraryActivity(row)
}

func (s *ItineraryStore) GetItineraryActivity(ctx context.Context, itineraryID, id string) (*types.ItineraryActivity, error) {
	query := `SELECT ` + itineraryActivityColumns + ` FROM itinerary_activities ia WHERE ia.id = $1 AND ia.itinerary_id = $2`
	return scanItineraryActivity(s.db.QueryRow(ctx, query, id, itineraryID))
}

// ListItineraryActivities returns the entries of one day ordered by their
// current order value, with the referenced activity attached.
func (s *ItineraryStore) ListItineraryActivities(ctx context.Context, itineraryID string) ([]*types.ItineraryActivity, error) {
	query := `
		SELECT ` + itineraryActivityColumns + `,
			a.id, a.trip_id, a.name, a.category, a.location, a.address, a.latitude, a.longitude,
			a.price, a.currency, a.duration_minutes, a.website, a.phone, a.opening_hours,
			a.rating, a.notes, a.created_at, a.updated_at
		FROM itinerary_activities ia
		JOIN activities a ON a.id = ia.activity_id
		WHERE ia.itinerary_id = $1
		ORDER BY ia.order_index ASC`

	rows, err := s.db.Query(ctx, query, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*types.ItineraryActivity
	for rows.Next() {
		ia := &types.ItineraryActivity{}
		a := &types.Activity{}
		err := rows.Scan(
			&ia.ID, &ia.ItineraryID, &ia.ActivityID, &ia.StartTime, &ia.EndTime,
			&ia.OrderIndex, &ia.Notes, &ia.CreatedAt, &ia.UpdatedAt,
			&a.ID, &a.TripID, &a.Name, &a.Category, &a.Location, &a.Address,
			&a.Latitude, &a.Longitude, &a.Price, &a.Currency, &a.DurationMinutes,
			&a.Website, &a.Phone, &a.OpeningHours, &a.Rating, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ia.Activity = a
		items = append(items, ia)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ItineraryStore) UpdateItineraryActivity(ctx context.Context, itineraryID, id string, update *types.ItineraryActivityUpdate) (*types.ItineraryActivity, error) {
	query := `
		UPDATE itinerary_activities AS ia
		SET start_time = COALESCE($1::timestamptz, start_time),
			end_time = COALESCE($2::timestamptz, end_time),
			notes = COALESCE($3::text, notes),
			updated_at = NOW()
		WHERE ia.id = $4 AND ia.itinerary_id = $5
		RETURNING ` + itineraryActivityColumns

	row := s.db.QueryRow(ctx, query, update.StartTime, update.EndTime, update.Notes, id, itineraryID)
	return scanItineraryActivity(row)
}

func (s *ItineraryStore) DeleteItineraryActivity(ctx context.Context, itineraryID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM itinerary_activities WHERE id = $1 AND itinerary_id = $2`, id, itineraryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// NextOrderIndex returns the next dense 1-based order value for the day.
func (s *ItineraryStore) NextOrderIndex(ctx context.Context, itineraryID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM itinerary_activities WHERE itinerary_id = $1`
	err := s.db.QueryRow(ctx, query, itineraryID).Scan(&next)
	return next, err
}

func (s *ItineraryStore) SetItineraryActivityOrder(ctx context.Context, id string, order int) error {
	_, err := s.db.Exec(ctx, `UPDATE itinerary_activities SET order_index = $1, updated_at = NOW() WHERE id = $2`, order, id)
	return err
}
