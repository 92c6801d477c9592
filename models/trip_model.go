package models

import (
	"context"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// TripModel owns trip CRUD and the trip-level cross-field rules.
type TripModel struct {
	trips store.TripStore
}

func NewTripModel(trips store.TripStore) *TripModel {
	return &TripModel{trips: trips}
}

func (m *TripModel) CreateTrip(ctx context.Context, userID string, input *types.TripCreate) (*types.Trip, *apperrors.AppError) {
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, apperrors.BusinessRuleConflict("Invalid trip dates", "end date must be after start date")
	}

	status := input.Status
	if status == "" {
		status = types.TripStatusPlanning
	}

	trip := &types.Trip{
		UserID:        userID,
		Name:          input.Name,
		Destination:   input.Destination,
		Description:   input.Description,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CoverImageURL: input.CoverImageURL,
		Status:        status,
	}

	created, err := m.trips.CreateTrip(ctx, trip)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *TripModel) GetTrip(ctx context.Context, tripID, userID string) (*types.Trip, *apperrors.AppError) {
	return guardTrip(ctx, m.trips, tripID, userID)
}

func (m *TripModel) ListTrips(ctx context.Context, userID string, filter types.TripFilter, page types.PageRequest) (*types.TripListResponse, *apperrors.AppError) {
	items, total, err := m.trips.ListTrips(ctx, userID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Trip{}
	}
	return &types.TripListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
	}, nil
}

// UpdateTrip merges stored values for untouched dates before re-checking the
// ordering rule, so a partial update cannot sneak an inverted range in.
func (m *TripModel) UpdateTrip(ctx context.Context, tripID, userID string, update *types.TripUpdate) (*types.Trip, *apperrors.AppError) {
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}

	current, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}

	start := current.StartDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	end := current.EndDate
	if update.EndDate != nil {
		end = *update.EndDate
	}
	if !end.After(start) {
		return nil, apperrors.BusinessRuleConflict("Invalid trip dates", "end date must be after start date")
	}

	updated, err := m.trips.UpdateTrip(ctx, tripID, update)
	if err != nil {
		return nil, mapStoreError(err, "Trip", tripID)
	}
	return updated, nil
}

// DeleteTrip removes the trip and, through the declared cascades, everything
// hanging off it.
func (m *TripModel) DeleteTrip(ctx context.Context, tripID, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.trips.DeleteTrip(ctx, tripID); err != nil {
		return mapStoreError(err, "Trip", tripID)
	}
	return nil
}
