package models

import (
	"context"
	"time"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// AccommodationModel owns stays and the interval exclusivity rule.
type AccommodationModel struct {
	trips          store.TripStore
	accommodations store.AccommodationStore
}

func NewAccommodationModel(trips store.TripStore, accommodations store.AccommodationStore) *AccommodationModel {
	return &AccommodationModel{trips: trips, accommodations: accommodations}
}

// checkStayWindow enforces ordering, trip containment and the half-open
// no-overlap rule. Touching endpoints (one stay's check-out on another's
// check-in) do not count as overlap.
func (m *AccommodationModel) checkStayWindow(ctx context.Context, trip *types.Trip, checkIn, checkOut time.Time, excludeID string) *apperrors.AppError {
	if !checkOut.After(checkIn) {
		return apperrors.BusinessRuleConflict("Invalid stay dates", "check-out must be after check-in")
	}
	if !dateWithinTrip(trip, checkIn) || !dateWithinTrip(trip, checkOut) {
		return apperrors.BusinessRuleConflict("Stay dates out of range", "check-in and check-out must fall within the trip dates")
	}

	overlapping, err := m.accommodations.CountOverlapping(ctx, trip.ID, checkIn, checkOut, excludeID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if overlapping > 0 {
		return apperrors.BusinessRuleConflict("Overlapping stay", "another accommodation overlaps these dates")
	}
	return nil
}

func (m *AccommodationModel) CreateAccommodation(ctx context.Context, tripID, userID string, input *types.AccommodationCreate) (*types.Accommodation, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}

	var fields []apperrors.FieldError
	if input.PricePerNight.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "pricePerNight", Message: "must not be negative"})
	}
	if input.TotalPrice.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "totalPrice", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationFailedFields("Validation failed", fields)
	}

	if appErr := m.checkStayWindow(ctx, trip, input.CheckIn, input.CheckOut, ""); appErr != nil {
		return nil, appErr
	}

	created, err := m.accommodations.CreateAccommodation(ctx, &types.Accommodation{
		TripID:           tripID,
		Name:             input.Name,
		Type:             input.Type,
		Address:          input.Address,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		CheckIn:          input.CheckIn,
		CheckOut:         input.CheckOut,
		PricePerNight:    input.PricePerNight,
		TotalPrice:       input.TotalPrice,
		Currency:         input.Currency,
		BookingURL:       input.BookingURL,
		ConfirmationCode: input.ConfirmationCode,
		Rating:           input.Rating,
		Notes:            input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *AccommodationModel) GetAccommodation(ctx context.Context, tripID, id, userID string) (*types.Accommodation, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	a, err := m.accommodations.GetAccommodation(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Accommodation", id)
	}
	return a, nil
}

func (m *AccommodationModel) ListAccommodations(ctx context.Context, tripID, userID string, filter types.AccommodationFilter, page types.PageRequest) (*types.AccommodationListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	items, total, err := m.accommodations.ListAccommodations(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Accommodation{}
	}
	return &types.AccommodationListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
	}, nil
}

func (m *AccommodationModel) UpdateAccommodation(ctx context.Context, tripID, id, userID string, update *types.AccommodationUpdate) (*types.Accommodation, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}

	var fields []apperrors.FieldError
	if update.PricePerNight != nil && update.PricePerNight.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "pricePerNight", Message: "must not be negative"})
	}
	if update.TotalPrice != nil && update.TotalPrice.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "totalPrice", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationFailedFields("Validation failed", fields)
	}

	current, err := m.accommodations.GetAccommodation(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Accommodation", id)
	}

	checkIn := current.CheckIn
	if update.CheckIn != nil {
		checkIn = *update.CheckIn
	}
	checkOut := current.CheckOut
	if update.CheckOut != nil {
		checkOut = *update.CheckOut
	}
	if appErr := m.checkStayWindow(ctx, trip, checkIn, checkOut, id); appErr != nil {
		return nil, appErr
	}

	updated, err := m.accommodations.UpdateAccommodation(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Accommodation", id)
	}
	return updated, nil
}

func (m *AccommodationModel) DeleteAccommodation(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.accommodations.DeleteAccommodation(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Accommodation", id)
	}
	return nil
}
