package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsForDateArgs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewItineraryStore(mock)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	dateQuery := `SELECT EXISTS .+ date = \$2::date AND \(\$3::uuid IS NULL OR id <> \$3::uuid\)`

	t.Run("create passes a null exclusion", func(t *testing.T) {
		mock.ExpectQuery(dateQuery).
			WithArgs("trip-1", date, (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := s.ExistsForDate(context.Background(), "trip-1", date, "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update excludes the itinerary itself", func(t *testing.T) {
		self := "itin-1"
		mock.ExpectQuery(dateQuery).
			WithArgs("trip-1", date, &self).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := s.ExistsForDate(context.Background(), "trip-1", date, "itin-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNextOrderIndex(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewItineraryStore(mock)

	t.Run("empty day starts at one", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(order_index\), 0\) \+ 1`).
			WithArgs("itin-1").
			WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(1))

		next, err := s.NextOrderIndex(context.Background(), "itin-1")
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("appends after the highest order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(order_index\), 0\) \+ 1`).
			WithArgs("itin-1").
			WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(4))

		next, err := s.NextOrderIndex(context.Background(), "itin-1")
		require.NoError(t, err)
		assert.Equal(t, 4, next)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetItineraryActivityOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewItineraryStore(mock)

	mock.ExpectExec(`UPDATE itinerary_activities SET order_index = \$1`).
		WithArgs(2, "entry-3").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.SetItineraryActivityOrder(context.Background(), "entry-3", 2))
	require.NoError(t, mock.ExpectationsWereMet())
}
