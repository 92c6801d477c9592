package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// NoteStore implements store.NoteStore using PostgreSQL.
type NoteStore struct {
	db DB
}

func NewNoteStore(db DB) *NoteStore {
	return &NoteStore{db: db}
}

const noteColumns = `id, trip_id, title, content, type, created_at, updated_at`

func scanNote(row pgx.Row) (*types.TripNote, error) {
	n := &types.TripNote{}
	err := row.Scan(&n.ID, &n.TripID, &n.Title, &n.Content, &n.Type, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *NoteStore) CreateNote(ctx context.Context, n *types.TripNote) (*types.TripNote, error) {
	query := `
		INSERT INTO trip_notes (trip_id, title, content, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + noteColumns

	return scanNote(s.db.QueryRow(ctx, query, n.TripID, n.Title, n.Content, n.Type))
}

func (s *NoteStore) GetNote(ctx context.Context, tripID, id string) (*types.TripNote, error) {
	query := `SELECT ` + noteColumns + ` FROM trip_notes WHERE id = $1 AND trip_id = $2`
	return scanNote(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *NoteStore) ListNotes(ctx context.Context, tripID string, filter types.TripNoteFilter, page types.PageRequest) ([]*types.TripNote, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (title ILIKE $%d OR content ILIKE $%d)`, len(args), len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM trip_notes `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM trip_notes %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		noteColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.TripNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *NoteStore) UpdateNote(ctx context.Context, tripID, id string, update *types.TripNoteUpdate) (*types.TripNote, error) {
	query := `
		UPDATE trip_notes
		SET title = COALESCE($1::text, title),
			content = COALESCE($2::text, content),
			type = COALESCE($3::text, type),
			updated_at = NOW()
		WHERE id = $4 AND trip_id = $5
		RETURNING ` + noteColumns

	return scanNote(s.db.QueryRow(ctx, query, update.Title, update.Content, update.Type, id, tripID))
}

func (s *NoteStore) DeleteNote(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trip_notes WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
