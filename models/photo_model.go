package models

import (
	"context"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// PhotoModel owns photo references and their itinerary/activity associations.
type PhotoModel struct {
	trips       store.TripStore
	photos      store.PhotoStore
	itineraries store.ItineraryStore
	activities  store.ActivityStore
}

func NewPhotoModel(trips store.TripStore, photos store.PhotoStore, itineraries store.ItineraryStore, activities store.ActivityStore) *PhotoModel {
	return &PhotoModel{trips: trips, photos: photos, itineraries: itineraries, activities: activities}
}

// checkAssociations resolves optional itinerary and activity references
// within the same trip. Foreign and absent targets look identical.
func (m *PhotoModel) checkAssociations(ctx context.Context, tripID string, itineraryID, activityID *string) *apperrors.AppError {
	if itineraryID != nil {
		if _, err := m.itineraries.GetItinerary(ctx, tripID, *itineraryID); err != nil {
			return mapStoreError(err, "Itinerary", *itineraryID)
		}
	}
	if activityID != nil {
		if _, err := m.activities.GetActivity(ctx, tripID, *activityID); err != nil {
			return mapStoreError(err, "Activity", *activityID)
		}
	}
	return nil
}

func (m *PhotoModel) CreatePhoto(ctx context.Context, tripID, userID string, input *types.PhotoCreate) (*types.Photo, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if appErr := m.checkAssociations(ctx, tripID, input.ItineraryID, input.ActivityID); appErr != nil {
		return nil, appErr
	}

	created, err := m.photos.CreatePhoto(ctx, &types.Photo{
		TripID:       tripID,
		FileURL:      input.FileURL,
		ThumbnailURL: input.ThumbnailURL,
		Caption:      input.Caption,
		TakenAt:      input.TakenAt,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		ItineraryID:  input.ItineraryID,
		ActivityID:   input.ActivityID,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *PhotoModel) GetPhoto(ctx context.Context, tripID, id, userID string) (*types.Photo, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	p, err := m.photos.GetPhoto(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Photo", id)
	}
	return p, nil
}

func (m *PhotoModel) ListPhotos(ctx context.Context, tripID, userID string, filter types.PhotoFilter, page types.PageRequest) (*types.PhotoListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	items, total, err := m.photos.ListPhotos(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Photo{}
	}

	stats, err := m.photos.GetPhotoStats(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.PhotoListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
		Statistics: *stats,
	}, nil
}

func (m *PhotoModel) UpdatePhoto(ctx context.Context, tripID, id, userID string, update *types.PhotoUpdate) (*types.Photo, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if appErr := checkRefFormat("itineraryId", update.ItineraryID); appErr != nil {
		return nil, appErr
	}
	if appErr := checkRefFormat("activityId", update.ActivityID); appErr != nil {
		return nil, appErr
	}
	if appErr := m.checkAssociations(ctx, tripID, update.ItineraryID.Value, update.ActivityID.Value); appErr != nil {
		return nil, appErr
	}

	updated, err := m.photos.UpdatePhoto(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Photo", id)
	}
	return updated, nil
}

func (m *PhotoModel) DeletePhoto(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.photos.DeletePhoto(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Photo", id)
	}
	return nil
}
