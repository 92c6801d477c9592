// Package store defines the persistence interfaces the business layer
// depends on. The postgres subpackage provides the production implementation.
package store

import (
	"context"
	"time"

	"github.com/wayfarerhq/wayfarer-backend/types"
)

// UserStore resolves authenticated identities to user records.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

// TripStore persists trips. GetTripForUser is the ownership guard primitive:
// it returns ErrNotFound both when the trip is absent and when it belongs to
// someone else.
type TripStore interface {
	CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error)
	GetTripForUser(ctx context.Context, tripID, userID string) (*types.Trip, error)
	ListTrips(ctx context.Context, userID string, filter types.TripFilter, page types.PageRequest) ([]*types.Trip, int64, error)
	UpdateTrip(ctx context.Context, tripID string, update *types.TripUpdate) (*types.Trip, error)
	// DeleteTrip removes the trip; descendants go with it via declared
	// CASCADE foreign keys, in one statement.
	DeleteTrip(ctx context.Context, tripID string) error
}

// ItineraryStore persists day plans and their ordered activity entries.
type ItineraryStore interface {
	CreateItinerary(ctx context.Context, it *types.Itinerary) (*types.Itinerary, error)
	GetItinerary(ctx context.Context, tripID, id string) (*types.Itinerary, error)
	ListItineraries(ctx context.Context, tripID string, filter types.ItineraryFilter, page types.PageRequest) ([]*types.Itinerary, int64, error)
	UpdateItinerary(ctx context.Context, tripID, id string, update *types.ItineraryUpdate) (*types.Itinerary, error)
	// DeleteItinerary removes the day plan; its activity entries and photos
	// are removed with it via declared CASCADE foreign keys.
	DeleteItinerary(ctx context.Context, tripID, id string) error
	// ExistsForDate reports whether another itinerary of the trip falls on
	// the same calendar date. excludeID may be empty.
	ExistsForDate(ctx context.Context, tripID string, date time.Time, excludeID string) (bool, error)
	GetItineraryStats(ctx context.Context, tripID string) (*types.ItineraryStats, error)

	CreateItineraryActivity(ctx context.Context, ia *types.ItineraryActivity) (*types.ItineraryActivity, error)
	GetItineraryActivity(ctx context.Context, itineraryID, id string) (*types.ItineraryActivity, error)
	ListItineraryActivities(ctx context.Context, itineraryID string) ([]*types.ItineraryActivity, error)
	UpdateItineraryActivity(ctx context.Context, itineraryID, id string, update *types.ItineraryActivityUpdate) (*types.ItineraryActivity, error)
	DeleteItineraryActivity(ctx context.Context, itineraryID, id string) error
	NextOrderIndex(ctx context.Context, itineraryID string) (int, error)
	SetItineraryActivityOrder(ctx context.Context, id string, order int) error
}

// ActivityStore persists the trip-scoped activity catalog.
type ActivityStore interface {
	CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error)
	GetActivity(ctx context.Context, tripID, id string) (*types.Activity, error)
	ListActivities(ctx context.Context, tripID string, filter types.ActivityFilter, page types.PageRequest) ([]*types.Activity, int64, error)
	UpdateActivity(ctx context.Context, tripID, id string, update *types.ActivityUpdate) (*types.Activity, error)
	DeleteActivity(ctx context.Context, tripID, id string) error
	// ScheduledReferenceCount counts itinerary entries referencing the
	// activity; deletion is blocked while it is non-zero.
	ScheduledReferenceCount(ctx context.Context, activityID string) (int64, error)
}

// TransportationStore persists booked transport legs.
type TransportationStore interface {
	CreateTransportation(ctx context.Context, t *types.Transportation) (*types.Transportation, error)
	GetTransportation(ctx context.Context, tripID, id string) (*types.Transportation, error)
	ListTransportations(ctx context.Context, tripID string, filter types.TransportationFilter, page types.PageRequest) ([]*types.Transportation, int64, error)
	UpdateTransportation(ctx context.Context, tripID, id string, update *types.TransportationUpdate) (*types.Transportation, error)
	DeleteTransportation(ctx context.Context, tripID, id string) error
}

// AccommodationStore persists stays.
type AccommodationStore interface {
	CreateAccommodation(ctx context.Context, a *types.Accommodation) (*types.Accommodation, error)
	GetAccommodation(ctx context.Context, tripID, id string) (*types.Accommodation, error)
	ListAccommodations(ctx context.Context, tripID string, filter types.AccommodationFilter, page types.PageRequest) ([]*types.Accommodation, int64, error)
	UpdateAccommodation(ctx context.Context, tripID, id string, update *types.AccommodationUpdate) (*types.Accommodation, error)
	DeleteAccommodation(ctx context.Context, tripID, id string) error
	// CountOverlapping counts stays of the trip whose half-open
	// [check_in, check_out) window intersects the given one. excludeID may
	// be empty.
	CountOverlapping(ctx context.Context, tripID string, checkIn, checkOut time.Time, excludeID string) (int64, error)
}

// BudgetStore persists planned amounts, one row per (trip, category).
type BudgetStore interface {
	CreateBudget(ctx context.Context, b *types.Budget) (*types.Budget, error)
	GetBudget(ctx context.Context, tripID, id string) (*types.Budget, error)
	ListBudgets(ctx context.Context, tripID string, filter types.BudgetFilter, page types.PageRequest) ([]*types.Budget, int64, error)
	UpdateBudget(ctx context.Context, tripID, id string, update *types.BudgetUpdate) (*types.Budget, error)
	// DeleteBudget clears the back-reference of linked expenses and removes
	// the budget row; expenses themselves survive.
	DeleteBudget(ctx context.Context, tripID, id string) error
	ExistsCategory(ctx context.Context, tripID string, category types.BudgetCategory, excludeID string) (bool, error)
	GetBudgetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error)
}

// ExpenseStore persists spent amounts.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e *types.Expense) (*types.Expense, error)
	GetExpense(ctx context.Context, tripID, id string) (*types.Expense, error)
	ListExpenses(ctx context.Context, tripID string, filter types.ExpenseFilter, page types.PageRequest) ([]*types.Expense, int64, error)
	UpdateExpense(ctx context.Context, tripID, id string, update *types.ExpenseUpdate) (*types.Expense, error)
	DeleteExpense(ctx context.Context, tripID, id string) error
	GetExpenseSummary(ctx context.Context, tripID string) (*types.ExpenseSummary, error)
}

// DocumentStore persists travel document references.
type DocumentStore interface {
	CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error)
	GetDocument(ctx context.Context, tripID, id string) (*types.Document, error)
	ListDocuments(ctx context.Context, tripID string, filter types.DocumentFilter, page types.PageRequest) ([]*types.Document, int64, error)
	UpdateDocument(ctx context.Context, tripID, id string, update *types.DocumentUpdate) (*types.Document, error)
	DeleteDocument(ctx context.Context, tripID, id string) error
	ExistsName(ctx context.Context, tripID, name, excludeID string) (bool, error)
	GetDocumentStats(ctx context.Context, tripID string, expiringWithin time.Duration) (*types.DocumentStats, error)
}

// PhotoStore persists photo references.
type PhotoStore interface {
	CreatePhoto(ctx context.Context, p *types.Photo) (*types.Photo, error)
	GetPhoto(ctx context.Context, tripID, id string) (*types.Photo, error)
	ListPhotos(ctx context.Context, tripID string, filter types.PhotoFilter, page types.PageRequest) ([]*types.Photo, int64, error)
	UpdatePhoto(ctx context.Context, tripID, id string, update *types.PhotoUpdate) (*types.Photo, error)
	DeletePhoto(ctx context.Context, tripID, id string) error
	GetPhotoStats(ctx context.Context, tripID string) (*types.PhotoStats, error)
}

// NoteStore persists trip notes.
type NoteStore interface {
	CreateNote(ctx context.Context, n *types.TripNote) (*types.TripNote, error)
	GetNote(ctx context.Context, tripID, id string) (*types.TripNote, error)
	ListNotes(ctx context.Context, tripID string, filter types.TripNoteFilter, page types.PageRequest) ([]*types.TripNote, int64, error)
	UpdateNote(ctx context.Context, tripID, id string, update *types.TripNoteUpdate) (*types.TripNote, error)
	DeleteNote(ctx context.Context, tripID, id string) error
}
