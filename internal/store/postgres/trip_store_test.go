package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

func tripRow(id, userID string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "user_id", "name", "destination", "description",
		"start_date", "end_date", "cover_image_url", "status",
		"created_at", "updated_at",
	}).AddRow(
		id, userID, "Summer in Lisbon", "Lisbon", "",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		"", types.TripStatusPlanning, now, now,
	)
}

func TestGetTripForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewTripStore(mock)

	t.Run("owned trip is returned", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM trips WHERE id = \$1 AND user_id = \$2`).
			WithArgs("trip-1", "user-1").
			WillReturnRows(tripRow("trip-1", "user-1"))

		trip, err := s.GetTripForUser(context.Background(), "trip-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "trip-1", trip.ID)
		assert.Equal(t, types.TripStatusPlanning, trip.Status)
	})

	t.Run("foreign trip maps to ErrNotFound", func(t *testing.T) {
		// The scoped query returns no rows for a trip owned by someone else.
		mock.ExpectQuery(`SELECT .+ FROM trips WHERE id = \$1 AND user_id = \$2`).
			WithArgs("trip-1", "intruder").
			WillReturnError(pgx.ErrNoRows)

		_, err := s.GetTripForUser(context.Background(), "trip-1", "intruder")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTripNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewTripStore(mock)

	mock.ExpectExec(`DELETE FROM trips WHERE id = \$1`).
		WithArgs("absent").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = s.DeleteTrip(context.Background(), "absent")
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTripsFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewTripStore(mock)
	status := types.TripStatusActive

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trips`).
		WithArgs("user-1", "%lisbon%", status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	mock.ExpectQuery(`SELECT .+ FROM trips .+ ORDER BY created_at DESC`).
		WithArgs("user-1", "%lisbon%", status, 10, 0).
		WillReturnRows(tripRow("trip-1", "user-1"))

	items, total, err := s.ListTrips(context.Background(), "user-1",
		types.TripFilter{Search: "lisbon", Status: &status},
		types.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
