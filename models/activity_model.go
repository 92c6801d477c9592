package models

import (
	"context"
	"fmt"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ActivityModel owns the trip-scoped activity catalog.
type ActivityModel struct {
	trips      store.TripStore
	activities store.ActivityStore
}

func NewActivityModel(trips store.TripStore, activities store.ActivityStore) *ActivityModel {
	return &ActivityModel{trips: trips, activities: activities}
}

func (m *ActivityModel) CreateActivity(ctx context.Context, tripID, userID string, input *types.ActivityCreate) (*types.Activity, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if input.Price.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	created, err := m.activities.CreateActivity(ctx, &types.Activity{
		TripID:          tripID,
		Name:            input.Name,
		Category:        input.Category,
		Location:        input.Location,
		Address:         input.Address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Price:           input.Price,
		Currency:        input.Currency,
		DurationMinutes: input.DurationMinutes,
		Website:         input.Website,
		Phone:           input.Phone,
		OpeningHours:    input.OpeningHours,
		Rating:          input.Rating,
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *ActivityModel) GetActivity(ctx context.Context, tripID, id, userID string) (*types.Activity, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	a, err := m.activities.GetActivity(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Activity", id)
	}
	return a, nil
}

func (m *ActivityModel) ListActivities(ctx context.Context, tripID, userID string, filter types.ActivityFilter, page types.PageRequest) (*types.ActivityListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	items, total, err := m.activities.ListActivities(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Activity{}
	}
	return &types.ActivityListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
	}, nil
}

func (m *ActivityModel) UpdateActivity(ctx context.Context, tripID, id, userID string, update *types.ActivityUpdate) (*types.Activity, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if update.Price != nil && update.Price.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	updated, err := m.activities.UpdateActivity(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Activity", id)
	}
	return updated, nil
}

// DeleteActivity refuses while any itinerary entry still references the
// activity; the conflict carries the reference count.
func (m *ActivityModel) DeleteActivity(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if _, err := m.activities.GetActivity(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Activity", id)
	}

	refs, err := m.activities.ScheduledReferenceCount(ctx, id)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if refs > 0 {
		return apperrors.BusinessRuleConflict(
			"Activity is scheduled in itineraries",
			fmt.Sprintf("remove it from %d itinerary entr%s first", refs, pluralIES(refs)),
		)
	}

	if err := m.activities.DeleteActivity(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Activity", id)
	}
	return nil
}

func pluralIES(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
