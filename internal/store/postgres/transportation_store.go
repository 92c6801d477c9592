package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// TransportationStore implements store.TransportationStore using PostgreSQL.
type TransportationStore struct {
	db DB
}

func NewTransportationStore(db DB) *TransportationStore {
	return &TransportationStore{db: db}
}

const transportationColumns = `id, trip_id, type, company, departure_location, arrival_location, departure_time, arrival_time, confirmation_code, price, currency, notes, created_at, updated_at`

func scanTransportation(row pgx.Row) (*types.Transportation, error) {
	t := &types.Transportation{}
	err := row.Scan(
		&t.ID,
		&t.TripID,
		&t.Type,
		&t.Company,
		&t.DepartureLocation,
		&t.ArrivalLocation,
		&t.DepartureTime,
		&t.ArrivalTime,
		&t.ConfirmationCode,
		&t.Price,
		&t.Currency,
		&t.Notes,
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

func (s *TransportationStore) CreateTransportation(ctx context.Context, t *types.Transportation) (*types.Transportation, error) {
	query := `
		INSERT INTO transportations (trip_id, type, company, departure_location, arrival_location, departure_time, arrival_time, confirmation_code, price, currency, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + transportationColumns

	row := s.db.QueryRow(ctx, query,
		t.TripID, t.Type, t.Company, t.DepartureLocation, t.ArrivalLocation,
		t.DepartureTime, t.ArrivalTime, t.ConfirmationCode, t.Price, t.Currency, t.Notes,
	)
	return scanTransportation(row)
}

func (s *TransportationStore) GetTransportation(ctx context.Context, tripID, id string) (*types.Transportation, error) {
	query := `SELECT ` + transportationColumns + ` FROM transportations WHERE id = $1 AND trip_id = $2`
	return scanTransportation(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *TransportationStore) ListTransportations(ctx context.Context, tripID string, filter types.TransportationFilter, page types.PageRequest) ([]*types.Transportation, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (company ILIKE $%d OR departure_location ILIKE $%d OR arrival_location ILIKE $%d)`, len(args), len(args), len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM transportations `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM transportations %s ORDER BY departure_time ASC LIMIT $%d OFFSET $%d`,
		transportationColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Transportation
	for rows.Next() {
		t, err := scanTransportation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *TransportationStore) UpdateTransportation(ctx context.Context, tripID, id string, update *types.TransportationUpdate) (*types.Transportation, error) {
	query := `
		UPDATE transportations
		SET type = COALESCE($1::text, type),
			company = COALESCE($2::text, company),
			departure_location = COALESCE($3::text, departure_location),
			arrival_location = COALESCE($4::text, arrival_location),
			departure_time = COALESCE($5::timestamptz, departure_time),
			arrival_time = COALESCE($6::timestamptz, arrival_time),
			confirmation_code = COALESCE($7::text, confirmation_code),
			price = COALESCE($8::numeric, price),
			currency = COALESCE($9::text, currency),
			notes = COALESCE($10::text, notes),
			updated_at = NOW()
		WHERE id = $11 AND trip_id = $12
		RETURNING ` + transportationColumns

	row := s.db.QueryRow(ctx, query,
		update.Type, update.Company, update.DepartureLocation, update.ArrivalLocation,
		update.DepartureTime, update.ArrivalTime, update.ConfirmationCode,
		update.Price, update.Currency, update.Notes, id, tripID,
	)
	return scanTransportation(row)
}

func (s *TransportationStore) DeleteTransportation(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM transportations WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
