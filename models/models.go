// Package models holds the business layer. Each model wraps the stores for
// one resource, enforces the consistency rules, and translates store errors
// into the API error taxonomy. Handlers never talk to stores directly.
package models

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// guardTrip is the ownership gate. Every sub-resource operation goes through
// it before touching anything else; absence and foreign ownership are both
// reported as a 404 so existence never leaks.
func guardTrip(ctx context.Context, trips store.TripStore, tripID, userID string) (*types.Trip, *apperrors.AppError) {
	trip, err := trips.GetTripForUser(ctx, tripID, userID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, apperrors.TripNotFound(tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return trip, nil
}

// mapStoreError converts a store failure on a concrete entity lookup.
func mapStoreError(err error, entity, id string) *apperrors.AppError {
	if stderrors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound(entity, id)
	}
	return apperrors.NewDatabaseError(err)
}

// checkRefFormat validates the relink value of a nullable reference field.
// Clearing (explicit null) and leaving the field alone are always fine.
func checkRefFormat(field string, ref types.NullableID) *apperrors.AppError {
	if ref.Set && ref.Value != nil && uuid.Validate(*ref.Value) != nil {
		return apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: field, Message: "must be a valid UUID"},
		})
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateWithinTrip checks a date-valued field against the trip bounds,
// inclusive on both ends.
func dateWithinTrip(trip *types.Trip, d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(trip.StartDate)) && !day.After(dateOnly(trip.EndDate))
}

// timeWithinTrip checks a timestamp field against the trip bounds, treating
// the end date as a full inclusive day.
func timeWithinTrip(trip *types.Trip, t time.Time) bool {
	return !t.Before(dateOnly(trip.StartDate)) && t.Before(dateOnly(trip.EndDate).AddDate(0, 0, 1))
}
