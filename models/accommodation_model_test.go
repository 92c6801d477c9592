package models

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// stayFixtureStore backs CountOverlapping with an in-memory list applying the
// same half-open predicate the SQL uses.
func stayFixtureStore(stays []*types.Accommodation) *accommodationStoreMock {
	return &accommodationStoreMock{
		countOverlapping: func(_ context.Context, tripID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
			var n int64
			for _, s := range stays {
				if s.TripID != tripID || s.ID == excludeID {
					continue
				}
				if s.CheckIn.Before(checkOut) && checkIn.Before(s.CheckOut) {
					n++
				}
			}
			return n, nil
		},
		createAccommodation: func(_ context.Context, a *types.Accommodation) (*types.Accommodation, error) {
			a.ID = "acc-new"
			return a, nil
		},
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAccommodationOverlap(t *testing.T) {
	existing := []*types.Accommodation{
		{ID: "acc-1", TripID: "trip-1", CheckIn: day(2), CheckOut: day(5)},
	}
	m := NewAccommodationModel(ownedTripStore(testTrip()), stayFixtureStore(existing))

	t.Run("window inside an existing stay is rejected", func(t *testing.T) {
		_, appErr := m.CreateAccommodation(context.Background(), "trip-1", "user-1", &types.AccommodationCreate{
			Name:     "Alfama Guesthouse",
			Type:     types.AccommodationTypeHotel,
			CheckIn:  day(4),
			CheckOut: day(6),
		})
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
		assert.Equal(t, "Overlapping stay", appErr.Message)
	})

	t.Run("touching endpoints are allowed", func(t *testing.T) {
		// New check-in on the existing check-out day.
		a, appErr := m.CreateAccommodation(context.Background(), "trip-1", "user-1", &types.AccommodationCreate{
			Name:     "Alfama Guesthouse",
			Type:     types.AccommodationTypeHotel,
			CheckIn:  day(5),
			CheckOut: day(7),
		})
		require.Nil(t, appErr)
		assert.Equal(t, "acc-new", a.ID)
	})

	t.Run("inverted window is rejected before the overlap check", func(t *testing.T) {
		_, appErr := m.CreateAccommodation(context.Background(), "trip-1", "user-1", &types.AccommodationCreate{
			Name:     "Alfama Guesthouse",
			Type:     types.AccommodationTypeHotel,
			CheckIn:  day(7),
			CheckOut: day(7),
		})
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid stay dates", appErr.Message)
	})

	t.Run("window outside the trip is rejected", func(t *testing.T) {
		_, appErr := m.CreateAccommodation(context.Background(), "trip-1", "user-1", &types.AccommodationCreate{
			Name:     "Alfama Guesthouse",
			Type:     types.AccommodationTypeHotel,
			CheckIn:  day(9),
			CheckOut: day(12),
		})
		require.NotNil(t, appErr)
		assert.Equal(t, "Stay dates out of range", appErr.Message)
	})

	t.Run("negative price is a field error", func(t *testing.T) {
		_, appErr := m.CreateAccommodation(context.Background(), "trip-1", "user-1", &types.AccommodationCreate{
			Name:          "Alfama Guesthouse",
			Type:          types.AccommodationTypeHotel,
			CheckIn:       day(5),
			CheckOut:      day(7),
			PricePerNight: decimal.NewFromInt(-80),
		})
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "pricePerNight", appErr.Fields[0].Field)
	})
}

func TestUpdateAccommodationExcludesSelf(t *testing.T) {
	existing := []*types.Accommodation{
		{ID: "acc-1", TripID: "trip-1", CheckIn: day(2), CheckOut: day(5)},
	}
	s := stayFixtureStore(existing)
	s.getAccommodation = func(_ context.Context, _, id string) (*types.Accommodation, error) {
		return existing[0], nil
	}
	s.updateAccommodation = func(_ context.Context, _, _ string, _ *types.AccommodationUpdate) (*types.Accommodation, error) {
		return existing[0], nil
	}
	m := NewAccommodationModel(ownedTripStore(testTrip()), s)

	// Stretching a stay against itself is not an overlap.
	out := day(6)
	_, appErr := m.UpdateAccommodation(context.Background(), "trip-1", "acc-1", "user-1", &types.AccommodationUpdate{
		CheckOut: &out,
	})
	assert.Nil(t, appErr)
}
