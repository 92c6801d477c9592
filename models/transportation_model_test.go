package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

type transportationStoreMock struct {
	createTransportation func(ctx context.Context, tr *types.Transportation) (*types.Transportation, error)
	getTransportation    func(ctx context.Context, tripID, id string) (*types.Transportation, error)
	listTransportations  func(ctx context.Context, tripID string, filter types.TransportationFilter, page types.PageRequest) ([]*types.Transportation, int64, error)
	updateTransportation func(ctx context.Context, tripID, id string, update *types.TransportationUpdate) (*types.Transportation, error)
	deleteTransportation func(ctx context.Context, tripID, id string) error
}

func (m *transportationStoreMock) CreateTransportation(ctx context.Context, tr *types.Transportation) (*types.Transportation, error) {
	return m.createTransportation(ctx, tr)
}
func (m *transportationStoreMock) GetTransportation(ctx context.Context, tripID, id string) (*types.Transportation, error) {
	return m.getTransportation(ctx, tripID, id)
}
func (m *transportationStoreMock) ListTransportations(ctx context.Context, tripID string, filter types.TransportationFilter, page types.PageRequest) ([]*types.Transportation, int64, error) {
	return m.listTransportations(ctx, tripID, filter, page)
}
func (m *transportationStoreMock) UpdateTransportation(ctx context.Context, tripID, id string, update *types.TransportationUpdate) (*types.Transportation, error) {
	return m.updateTransportation(ctx, tripID, id, update)
}
func (m *transportationStoreMock) DeleteTransportation(ctx context.Context, tripID, id string) error {
	return m.deleteTransportation(ctx, tripID, id)
}

func TestCreateTransportationTimeWindow(t *testing.T) {
	transportations := &transportationStoreMock{
		createTransportation: func(_ context.Context, tr *types.Transportation) (*types.Transportation, error) {
			tr.ID = "trans-1"
			return tr, nil
		},
	}
	m := NewTransportationModel(ownedTripStore(testTrip()), transportations)

	create := func(departure, arrival time.Time) *apperrors.AppError {
		_, appErr := m.CreateTransportation(context.Background(), "trip-1", "user-1", &types.TransportationCreate{
			Type:              types.TransportationTypeFlight,
			DepartureLocation: "LIS",
			ArrivalLocation:   "OPO",
			DepartureTime:     departure,
			ArrivalTime:       arrival,
		})
		return appErr
	}

	t.Run("arrival before departure is rejected", func(t *testing.T) {
		departure := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
		appErr := create(departure, departure.Add(-time.Hour))
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid transportation times", appErr.Message)
	})

	t.Run("departure before the trip is rejected", func(t *testing.T) {
		appErr := create(
			time.Date(2025, 5, 31, 22, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC),
		)
		require.NotNil(t, appErr)
		assert.Equal(t, "Transportation times out of range", appErr.Message)
	})

	t.Run("last trip day counts in full", func(t *testing.T) {
		// 2025-06-10 23:00 is still inside a trip ending 2025-06-10.
		appErr := create(
			time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC),
		)
		assert.Nil(t, appErr)
	})

	t.Run("arrival past the last day is rejected", func(t *testing.T) {
		appErr := create(
			time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC),
		)
		require.NotNil(t, appErr)
		assert.Equal(t, "Transportation times out of range", appErr.Message)
	})
}

func TestUpdateTransportationMergesStoredTimes(t *testing.T) {
	stored := &types.Transportation{
		ID:            "trans-1",
		TripID:        "trip-1",
		DepartureTime: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
	}
	transportations := &transportationStoreMock{
		getTransportation: func(_ context.Context, _, _ string) (*types.Transportation, error) {
			return stored, nil
		},
		updateTransportation: func(_ context.Context, _, _ string, _ *types.TransportationUpdate) (*types.Transportation, error) {
			return stored, nil
		},
	}
	m := NewTransportationModel(ownedTripStore(testTrip()), transportations)

	// Only the arrival moves, to before the stored departure.
	arrival := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	_, appErr := m.UpdateTransportation(context.Background(), "trip-1", "trans-1", "user-1", &types.TransportationUpdate{
		ArrivalTime: &arrival,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ConflictError, appErr.Type)
}
