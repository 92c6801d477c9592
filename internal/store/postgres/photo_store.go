package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// PhotoStore implements store.PhotoStore using PostgreSQL.
type PhotoStore struct {
	db DB
}

func NewPhotoStore(db DB) *PhotoStore {
	return &PhotoStore{db: db}
}

const photoColumns = `id, trip_id, file_url, thumbnail_url, caption, taken_at, latitude, longitude, itinerary_id, activity_id, created_at, updated_at`

func scanPhoto(row pgx.Row) (*types.Photo, error) {
	p := &types.Photo{}
	err := row.Scan(
		&p.ID,
		&p.TripID,
		&p.FileURL,
		&p.ThumbnailURL,
		&p.Caption,
		&p.TakenAt,
		&p.Latitude,
		&p.Longitude,
		&p.ItineraryID,
		&p.ActivityID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PhotoStore) CreatePhoto(ctx context.Context, p *types.Photo) (*types.Photo, error) {
	query := `
		INSERT INTO photos (trip_id, file_url, thumbnail_url, caption, taken_at, latitude, longitude, itinerary_id, activity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + photoColumns

	row := s.db.QueryRow(ctx, query,
		p.TripID, p.FileURL, p.ThumbnailURL, p.Caption, p.TakenAt,
		p.Latitude, p.Longitude, p.ItineraryID, p.ActivityID,
	)
	return scanPhoto(row)
}

func (s *PhotoStore) GetPhoto(ctx context.Context, tripID, id string) (*types.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1 AND trip_id = $2`
	return scanPhoto(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *PhotoStore) ListPhotos(ctx context.Context, tripID string, filter types.PhotoFilter, page types.PageRequest) ([]*types.Photo, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND caption ILIKE $%d`, len(args))
	}
	if filter.ItineraryID != nil {
		args = append(args, *filter.ItineraryID)
		where += fmt.Sprintf(` AND itinerary_id = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM photos `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM photos %s ORDER BY taken_at DESC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d`,
		photoColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *PhotoStore) UpdatePhoto(ctx context.Context, tripID, id string, update *types.PhotoUpdate) (*types.Photo, error) {
	// Associations are tri-state: untouched, cleared, or relinked. The
	// flags distinguish "leave as is" from "set to NULL".
	query := `
		UPDATE photos
		SET thumbnail_url = COALESCE($1::text, thumbnail_url),
			caption = COALESCE($2::text, caption),
			taken_at = COALESCE($3::timestamptz, taken_at),
			latitude = COALESCE($4::double precision, latitude),
			longitude = COALESCE($5::double precision, longitude),
			itinerary_id = CASE WHEN $6::bool THEN $7::uuid ELSE itinerary_id END,
			activity_id = CASE WHEN $8::bool THEN $9::uuid ELSE activity_id END,
			updated_at = NOW()
		WHERE id = $10 AND trip_id = $11
		RETURNING ` + photoColumns

	row := s.db.QueryRow(ctx, query,
		update.ThumbnailURL, update.Caption, update.TakenAt,
		update.Latitude, update.Longitude,
		update.ItineraryID.Set, update.ItineraryID.Value,
		update.ActivityID.Set, update.ActivityID.Value,
		id, tripID,
	)
	return scanPhoto(row)
}

func (s *PhotoStore) DeletePhoto(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM photos WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *PhotoStore) GetPhotoStats(ctx context.Context, tripID string) (*types.PhotoStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(itinerary_id),
			COUNT(activity_id),
			COUNT(*) FILTER (WHERE itinerary_id IS NULL AND activity_id IS NULL),
			COUNT(*) FILTER (WHERE latitude IS NOT NULL AND longitude IS NOT NULL)
		FROM photos
		WHERE trip_id = $1`

	stats := &types.PhotoStats{}
	err := s.db.QueryRow(ctx, query, tripID).Scan(
		&stats.Total,
		&stats.WithItinerary,
		&stats.WithActivity,
		&stats.Unassigned,
		&stats.WithLocationData,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
