package models

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

type photoStoreMock struct {
	createPhoto   func(ctx context.Context, p *types.Photo) (*types.Photo, error)
	getPhoto      func(ctx context.Context, tripID, id string) (*types.Photo, error)
	listPhotos    func(ctx context.Context, tripID string, filter types.PhotoFilter, page types.PageRequest) ([]*types.Photo, int64, error)
	updatePhoto   func(ctx context.Context, tripID, id string, update *types.PhotoUpdate) (*types.Photo, error)
	deletePhoto   func(ctx context.Context, tripID, id string) error
	getPhotoStats func(ctx context.Context, tripID string) (*types.PhotoStats, error)
}

func (m *photoStoreMock) CreatePhoto(ctx context.Context, p *types.Photo) (*types.Photo, error) {
	return m.createPhoto(ctx, p)
}
func (m *photoStoreMock) GetPhoto(ctx context.Context, tripID, id string) (*types.Photo, error) {
	return m.getPhoto(ctx, tripID, id)
}
func (m *photoStoreMock) ListPhotos(ctx context.Context, tripID string, filter types.PhotoFilter, page types.PageRequest) ([]*types.Photo, int64, error) {
	return m.listPhotos(ctx, tripID, filter, page)
}
func (m *photoStoreMock) UpdatePhoto(ctx context.Context, tripID, id string, update *types.PhotoUpdate) (*types.Photo, error) {
	return m.updatePhoto(ctx, tripID, id, update)
}
func (m *photoStoreMock) DeletePhoto(ctx context.Context, tripID, id string) error {
	return m.deletePhoto(ctx, tripID, id)
}
func (m *photoStoreMock) GetPhotoStats(ctx context.Context, tripID string) (*types.PhotoStats, error) {
	return m.getPhotoStats(ctx, tripID)
}

func TestCreatePhotoAssociationScoping(t *testing.T) {
	knownItinerary := "c5d7a1f0-8d3c-4a7e-9b1f-2e4d6f8a0001"
	knownActivity := "c5d7a1f0-8d3c-4a7e-9b1f-2e4d6f8a0002"

	photos := &photoStoreMock{
		createPhoto: func(_ context.Context, p *types.Photo) (*types.Photo, error) {
			p.ID = "photo-1"
			return p, nil
		},
	}
	itineraries := &itineraryStoreMock{
		getItinerary: func(_ context.Context, tripID, id string) (*types.Itinerary, error) {
			if id == knownItinerary {
				return &types.Itinerary{ID: id, TripID: tripID}, nil
			}
			return nil, errNotFound
		},
	}
	activities := &activityStoreMock{
		getActivity: func(_ context.Context, tripID, id string) (*types.Activity, error) {
			if id == knownActivity {
				return &types.Activity{ID: id, TripID: tripID}, nil
			}
			return nil, errNotFound
		},
	}
	m := NewPhotoModel(ownedTripStore(testTrip()), photos, itineraries, activities)

	valid := types.PhotoCreate{FileURL: "https://photos.example.com/tram.jpg"}

	t.Run("itinerary of another trip is a 404", func(t *testing.T) {
		input := valid
		foreign := "c5d7a1f0-8d3c-4a7e-9b1f-2e4d6f8a0999"
		input.ItineraryID = &foreign
		_, appErr := m.CreatePhoto(context.Background(), "trip-1", "user-1", &input)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("unknown activity is a 404", func(t *testing.T) {
		input := valid
		foreign := "c5d7a1f0-8d3c-4a7e-9b1f-2e4d6f8a0998"
		input.ActivityID = &foreign
		_, appErr := m.CreatePhoto(context.Background(), "trip-1", "user-1", &input)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("both associations resolve", func(t *testing.T) {
		input := valid
		input.ItineraryID = &knownItinerary
		input.ActivityID = &knownActivity
		p, appErr := m.CreatePhoto(context.Background(), "trip-1", "user-1", &input)
		require.Nil(t, appErr)
		assert.Equal(t, "photo-1", p.ID)
	})

	t.Run("unassociated photo is fine", func(t *testing.T) {
		input := valid
		_, appErr := m.CreatePhoto(context.Background(), "trip-1", "user-1", &input)
		assert.Nil(t, appErr)
	})
}

func TestUpdatePhotoAssociationClearing(t *testing.T) {
	var stored *types.PhotoUpdate
	photos := &photoStoreMock{
		updatePhoto: func(_ context.Context, _, id string, update *types.PhotoUpdate) (*types.Photo, error) {
			stored = update
			return &types.Photo{ID: id}, nil
		},
	}
	m := NewPhotoModel(ownedTripStore(testTrip()), photos, &itineraryStoreMock{}, &activityStoreMock{})

	t.Run("explicit null clears without resolving", func(t *testing.T) {
		var update types.PhotoUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"itineraryId":null,"activityId":null}`), &update))
		_, appErr := m.UpdatePhoto(context.Background(), "trip-1", "photo-1", "user-1", &update)
		require.Nil(t, appErr)
		assert.True(t, stored.ItineraryID.Set)
		assert.Nil(t, stored.ItineraryID.Value)
		assert.True(t, stored.ActivityID.Set)
		assert.Nil(t, stored.ActivityID.Value)
	})

	t.Run("absent fields leave the links alone", func(t *testing.T) {
		var update types.PhotoUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"caption":"View from the castle"}`), &update))
		_, appErr := m.UpdatePhoto(context.Background(), "trip-1", "photo-1", "user-1", &update)
		require.Nil(t, appErr)
		assert.False(t, stored.ItineraryID.Set)
		assert.False(t, stored.ActivityID.Set)
	})

	t.Run("malformed relink value is a field error", func(t *testing.T) {
		var update types.PhotoUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"itineraryId":"day-one"}`), &update))
		_, appErr := m.UpdatePhoto(context.Background(), "trip-1", "photo-1", "user-1", &update)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "itineraryId", appErr.Fields[0].Field)
	})
}
