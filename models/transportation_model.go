package models

import (
	"context"
	"time"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// TransportationModel owns booked transport legs.
type TransportationModel struct {
	trips           store.TripStore
	transportations store.TransportationStore
}

func NewTransportationModel(trips store.TripStore, transportations store.TransportationStore) *TransportationModel {
	return &TransportationModel{trips: trips, transportations: transportations}
}

func validateTransportTimes(trip *types.Trip, departure, arrival time.Time) *apperrors.AppError {
	if !arrival.After(departure) {
		return apperrors.BusinessRuleConflict("Invalid transportation times", "arrival time must be after departure time")
	}
	if !timeWithinTrip(trip, departure) || !timeWithinTrip(trip, arrival) {
		return apperrors.BusinessRuleConflict("Transportation times out of range", "departure and arrival must fall within the trip dates")
	}
	return nil
}

func (m *TransportationModel) CreateTransportation(ctx context.Context, tripID, userID string, input *types.TransportationCreate) (*types.Transportation, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
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
	if appErr := validateTransportTimes(trip, input.DepartureTime, input.ArrivalTime); appErr != nil {
		return nil, appErr
	}

	created, err := m.transportations.CreateTransportation(ctx, &types.Transportation{
		TripID:            tripID,
		Type:              input.Type,
		Company:           input.Company,
		DepartureLocation: input.DepartureLocation,
		ArrivalLocation:   input.ArrivalLocation,
		DepartureTime:     input.DepartureTime,
		ArrivalTime:       input.ArrivalTime,
		ConfirmationCode:  input.ConfirmationCode,
		Price:             input.Price,
		Currency:          input.Currency,
		Notes:             input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *TransportationModel) GetTransportation(ctx context.Context, tripID, id, userID string) (*types.Transportation, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	t, err := m.transportations.GetTransportation(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Transportation", id)
	}
	return t, nil
}

func (m *TransportationModel) ListTransportations(ctx context.Context, tripID, userID string, filter types.TransportationFilter, page types.PageRequest) (*types.TransportationListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	items, total, err := m.transportations.ListTransportations(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Transportation{}
	}
	return &types.TransportationListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
	}, nil
}

func (m *TransportationModel) UpdateTransportation(ctx context.Context, tripID, id, userID string, update *types.TransportationUpdate) (*types.Transportation, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
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

	current, err := m.transportations.GetTransportation(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Transportation", id)
	}

	departure := current.DepartureTime
	if update.DepartureTime != nil {
		departure = *update.DepartureTime
	}
	arrival := current.ArrivalTime
	if update.ArrivalTime != nil {
		arrival = *update.ArrivalTime
	}
	if appErr := validateTransportTimes(trip, departure, arrival); appErr != nil {
		return nil, appErr
	}

	updated, err := m.transportations.UpdateTransportation(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Transportation", id)
	}
	return updated, nil
}

func (m *TransportationModel) DeleteTransportation(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.transportations.DeleteTransportation(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Transportation", id)
	}
	return nil
}
