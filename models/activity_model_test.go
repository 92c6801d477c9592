package models

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

func TestCreateActivityNegativePrice(t *testing.T) {
	m := NewActivityModel(ownedTripStore(testTrip()), &activityStoreMock{})

	_, appErr := m.CreateActivity(context.Background(), "trip-1", "user-1", &types.ActivityCreate{
		Name:     "Tram 28 ride",
		Category: types.ActivityCategorySightseeing,
		Price:    decimal.NewFromInt(-5),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "price", appErr.Fields[0].Field)
}

func TestDeleteActivityBlockedWhileScheduled(t *testing.T) {
	deleted := false
	activities := &activityStoreMock{
		getActivity: func(_ context.Context, _, id string) (*types.Activity, error) {
			return &types.Activity{ID: id, TripID: "trip-1"}, nil
		},
		scheduledReferenceCount: func(_ context.Context, _ string) (int64, error) {
			return 3, nil
		},
		deleteActivity: func(_ context.Context, _, _ string) error {
			deleted = true
			return nil
		},
	}
	m := NewActivityModel(ownedTripStore(testTrip()), activities)

	appErr := m.DeleteActivity(context.Background(), "trip-1", "act-1", "user-1")
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ConflictError, appErr.Type)
	assert.Contains(t, appErr.Detail, "3 itinerary entries")
	assert.False(t, deleted)
}

func TestDeleteActivityUnreferenced(t *testing.T) {
	deleted := false
	activities := &activityStoreMock{
		getActivity: func(_ context.Context, _, id string) (*types.Activity, error) {
			return &types.Activity{ID: id, TripID: "trip-1"}, nil
		},
		scheduledReferenceCount: func(_ context.Context, _ string) (int64, error) {
			return 0, nil
		},
		deleteActivity: func(_ context.Context, _, _ string) error {
			deleted = true
			return nil
		},
	}
	m := NewActivityModel(ownedTripStore(testTrip()), activities)

	appErr := m.DeleteActivity(context.Background(), "trip-1", "act-1", "user-1")
	require.Nil(t, appErr)
	assert.True(t, deleted)
}
