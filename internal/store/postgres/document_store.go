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

// DocumentStore implements store.DocumentStore using PostgreSQL.
type DocumentStore struct {
	db DB
}

func NewDocumentStore(db DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, trip_id, name, type, file_url, file_type, file_size, expiry_date, notes, created_at, updated_at`

func scanDocument(row pgx.Row) (*types.Document, error) {
	d := &types.Document{}
	err := row.Scan(
		&d.ID,
		&d.TripID,
		&d.Name,
		&d.Type,
		&d.FileURL,
		&d.FileType,
		&d.FileSize,
		&d.ExpiryDate,
		&d.Notes,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DocumentStore) CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error) {
	query := `
		INSERT INTO documents (trip_id, name, type, file_url, file_type, file_size, expiry_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns

	row := s.db.QueryRow(ctx, query,
		d.TripID, d.Name, d.Type, d.FileURL, d.FileType, d.FileSize, d.ExpiryDate, d.Notes,
	)
	return scanDocument(row)
}

func (s *DocumentStore) GetDocument(ctx context.Context, tripID, id string) (*types.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND trip_id = $2`
	return scanDocument(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *DocumentStore) ListDocuments(ctx context.Context, tripID string, filter types.DocumentFilter, page types.PageRequest) ([]*types.Document, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (name ILIKE $%d OR notes ILIKE $%d)`, len(args), len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM documents %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *DocumentStore) UpdateDocument(ctx context.Context, tripID, id string, update *types.DocumentUpdate) (*types.Document, error) {
	query := `
		UPDATE documents
		SET name = COALESCE($1::text, name),
			type = COALESCE($2::text, type),
			file_url = COALESCE($3::text, file_url),
			file_type = COALESCE($4::text, file_type),
			file_size = COALESCE($5::bigint, file_size),
			expiry_date = COALESCE($6::date, expiry_date),
			notes = COALESCE($7::text, notes),
			updated_at = NOW()
		WHERE id = $8 AND trip_id = $9
		RETURNING ` + documentColumns

	row := s.db.QueryRow(ctx, query,
		update.Name, update.Type, update.FileURL, update.FileType,
		update.FileSize, update.ExpiryDate, update.Notes, id, tripID,
	)
	return scanDocument(row)
}

func (s *DocumentStore) DeleteDocument(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *DocumentStore) ExistsName(ctx context.Context, tripID, name, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM documents WHERE trip_id = $1 AND lower(name) = lower($2) AND ($3::uuid IS NULL OR id <> $3::uuid))`
	var exists bool
	err := s.db.QueryRow(ctx, query, tripID, name, nullableID(excludeID)).Scan(&exists)
	return exists, err
}

// GetDocumentStats counts documents by type and collects those whose expiry
// falls within the given window from now (expired ones excluded).
func (s *DocumentStore) GetDocumentStats(ctx context.Context, tripID string, expiringWithin time.Duration) (*types.DocumentStats, error) {
	stats := &types.DocumentStats{ByType: map[string]int64{}}

	rows, err := s.db.Query(ctx, `SELECT type, COUNT(*) FROM documents WHERE trip_id = $1 GROUP BY type`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var docType string
		var count int64
		if err := rows.Scan(&docType, &count); err != nil {
			return nil, err
		}
		stats.ByType[docType] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(expiringWithin)
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE trip_id = $1
		  AND expiry_date IS NOT NULL
		  AND expiry_date >= NOW()::date
		  AND expiry_date <= $2::date
		ORDER BY expiry_date ASC`

	expRows, err := s.db.Query(ctx, query, tripID, deadline)
	if err != nil {
		return nil, err
	}
	defer expRows.Close()
	for expRows.Next() {
		d, err := scanDocument(expRows)
		if err != nil {
			return nil, err
		}
		stats.ExpiringSoon = append(stats.ExpiringSoon, d)
	}
	if err := expRows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
