package models

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ItineraryModel owns day plans and their ordered activity entries.
type ItineraryModel struct {
	trips       store.TripStore
	itineraries store.ItineraryStore
	activities  store.ActivityStore
}

func NewItineraryModel(trips store.TripStore, itineraries store.ItineraryStore, activities store.ActivityStore) *ItineraryModel {
	return &ItineraryModel{trips: trips, itineraries: itineraries, activities: activities}
}

func (m *ItineraryModel) CreateItinerary(ctx context.Context, tripID, userID string, input *types.ItineraryCreate) (*types.Itinerary, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if !dateWithinTrip(trip, input.Date) {
		return nil, apperrors.BusinessRuleConflict("Itinerary date out of range", "date must fall within the trip dates")
	}

	exists, err := m.itineraries.ExistsForDate(ctx, tripID, input.Date, "")
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if exists {
		return nil, apperrors.BusinessRuleConflict("Duplicate itinerary date", "an itinerary already exists for this date")
	}

	created, err := m.itineraries.CreateItinerary(ctx, &types.Itinerary{
		TripID: tripID,
		Date:   input.Date,
		Notes:  input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

// GetItinerary returns the day plan with its scheduled activities attached.
func (m *ItineraryModel) GetItinerary(ctx context.Context, tripID, id, userID string) (*types.Itinerary, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	it, err := m.itineraries.GetItinerary(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Itinerary", id)
	}

	activities, err := m.itineraries.ListItineraryActivities(ctx, it.ID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	it.Activities = activities
	return it, nil
}

func (m *ItineraryModel) ListItineraries(ctx context.Context, tripID, userID string, filter types.ItineraryFilter, page types.PageRequest) (*types.ItineraryListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	items, total, err := m.itineraries.ListItineraries(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Itinerary{}
	}

	stats, err := m.itineraries.GetItineraryStats(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.ItineraryListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
		Statistics: *stats,
	}, nil
}

func (m *ItineraryModel) UpdateItinerary(ctx context.Context, tripID, id, userID string, update *types.ItineraryUpdate) (*types.Itinerary, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}

	if update.Date != nil {
		if !dateWithinTrip(trip, *update.Date) {
			return nil, apperrors.BusinessRuleConflict("Itinerary date out of range", "date must fall within the trip dates")
		}
		exists, err := m.itineraries.ExistsForDate(ctx, tripID, *update.Date, id)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		if exists {
			return nil, apperrors.BusinessRuleConflict("Duplicate itinerary date", "an itinerary already exists for this date")
		}
	}

	updated, err := m.itineraries.UpdateItinerary(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Itinerary", id)
	}
	return updated, nil
}

// DeleteItinerary removes the day plan; its activity entries and photos go
// with it via the declared cascades.
func (m *ItineraryModel) DeleteItinerary(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.itineraries.DeleteItinerary(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Itinerary", id)
	}
	return nil
}

func (m *ItineraryModel) AddActivity(ctx context.Context, tripID, itineraryID, userID string, input *types.ItineraryActivityCreate) (*types.ItineraryActivity, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}

	if _, err := m.itineraries.GetItinerary(ctx, tripID, itineraryID); err != nil {
		return nil, mapStoreError(err, "Itinerary", itineraryID)
	}
	// The referenced activity must belong to the same trip; a foreign one is
	// indistinguishable from an absent one.
	if _, err := m.activities.GetActivity(ctx, tripID, input.ActivityID); err != nil {
		return nil, mapStoreError(err, "Activity", input.ActivityID)
	}

	if input.StartTime != nil && input.EndTime != nil && !input.EndTime.After(*input.StartTime) {
		return nil, apperrors.BusinessRuleConflict("Invalid activity times", "end time must be after start time")
	}

	order, err := m.itineraries.NextOrderIndex(ctx, itineraryID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	created, err := m.itineraries.CreateItineraryActivity(ctx, &types.ItineraryActivity{
		ItineraryID: itineraryID,
		ActivityID:  input.ActivityID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		OrderIndex:  order,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *ItineraryModel) UpdateActivity(ctx context.Context, tripID, itineraryID, id, userID string, update *types.ItineraryActivityUpdate) (*types.ItineraryActivity, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if _, err := m.itineraries.GetItinerary(ctx, tripID, itineraryID); err != nil {
		return nil, mapStoreError(err, "Itinerary", itineraryID)
	}

	current, err := m.itineraries.GetItineraryActivity(ctx, itineraryID, id)
	if err != nil {
		return nil, mapStoreError(err, "Itinerary activity", id)
	}

	start := current.StartTime
	if update.StartTime != nil {
		start = update.StartTime
	}
	end := current.EndTime
	if update.EndTime != nil {
		end = update.EndTime
	}
	if start != nil && end != nil && !end.After(*start) {
		return nil, apperrors.BusinessRuleConflict("Invalid activity times", "end time must be after start time")
	}

	updated, err := m.itineraries.UpdateItineraryActivity(ctx, itineraryID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Itinerary activity", id)
	}
	return updated, nil
}

// RemoveActivity deletes the entry and rewrites the survivors with dense
// 1-based order values, preserving their relative order. The individual
// updates run concurrently and are awaited together; any failure fails the
// whole operation.
func (m *ItineraryModel) RemoveActivity(ctx context.Context, tripID, itineraryID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if _, err := m.itineraries.GetItinerary(ctx, tripID, itineraryID); err != nil {
		return mapStoreError(err, "Itinerary", itineraryID)
	}

	if err := m.itineraries.DeleteItineraryActivity(ctx, itineraryID, id); err != nil {
		return mapStoreError(err, "Itinerary activity", id)
	}

	remaining, err := m.itineraries.ListItineraryActivities(ctx, itineraryID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range remaining {
		if entry.OrderIndex == i+1 {
			continue
		}
		entryID, order := entry.ID, i+1
		g.Go(func() error {
			return m.itineraries.SetItineraryActivityOrder(gctx, entryID, order)
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
