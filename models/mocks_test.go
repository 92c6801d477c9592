package models

import (
	"context"
	"time"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// Hand-written store mocks. Unset function fields panic so a test that
// triggers an unexpected call fails loudly.

var errNotFound = store.ErrNotFound

// testTrip is the common fixture: user-1's trip from 2025-06-01 to 2025-06-10.
func testTrip() *types.Trip {
	return &types.Trip{
		ID:          "trip-1",
		UserID:      "user-1",
		Name:        "Summer in Lisbon",
		Destination: "Lisbon",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:      types.TripStatusPlanning,
	}
}

type tripStoreMock struct {
	createTrip     func(ctx context.Context, trip *types.Trip) (*types.Trip, error)
	getTripForUser func(ctx context.Context, tripID, userID string) (*types.Trip, error)
	listTrips      func(ctx context.Context, userID string, filter types.TripFilter, page types.PageRequest) ([]*types.Trip, int64, error)
	updateTrip     func(ctx context.Context, tripID string, update *types.TripUpdate) (*types.Trip, error)
	deleteTrip     func(ctx context.Context, tripID string) error
}

func (m *tripStoreMock) CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error) {
	return m.createTrip(ctx, trip)
}
func (m *tripStoreMock) GetTripForUser(ctx context.Context, tripID, userID string) (*types.Trip, error) {
	return m.getTripForUser(ctx, tripID, userID)
}
func (m *tripStoreMock) ListTrips(ctx context.Context, userID string, filter types.TripFilter, page types.PageRequest) ([]*types.Trip, int64, error) {
	return m.listTrips(ctx, userID, filter, page)
}
func (m *tripStoreMock) UpdateTrip(ctx context.Context, tripID string, update *types.TripUpdate) (*types.Trip, error) {
	return m.updateTrip(ctx, tripID, update)
}
func (m *tripStoreMock) DeleteTrip(ctx context.Context, tripID string) error {
	return m.deleteTrip(ctx, tripID)
}

// ownedTripStore returns a trip store whose ownership guard admits exactly
// the given (tripID, userID) pair.
func ownedTripStore(trip *types.Trip) *tripStoreMock {
	return &tripStoreMock{
		getTripForUser: func(_ context.Context, tripID, userID string) (*types.Trip, error) {
			if trip != nil && tripID == trip.ID && userID == trip.UserID {
				return trip, nil
			}
			return nil, errNotFound
		},
	}
}

type itineraryStoreMock struct {
	createItinerary           func(ctx context.Context, it *types.Itinerary) (*types.Itinerary, error)
	getItinerary              func(ctx context.Context, tripID, id string) (*types.Itinerary, error)
	listItineraries           func(ctx context.Context, tripID string, filter types.ItineraryFilter, page types.PageRequest) ([]*types.Itinerary, int64, error)
	updateItinerary           func(ctx context.Context, tripID, id string, update *types.ItineraryUpdate) (*types.Itinerary, error)
	deleteItinerary           func(ctx context.Context, tripID, id string) error
	existsForDate             func(ctx context.Context, tripID string, date time.Time, excludeID string) (bool, error)
	getItineraryStats         func(ctx context.Context, tripID string) (*types.ItineraryStats, error)
	createItineraryActivity   func(ctx context.Context, ia *types.ItineraryActivity) (*types.ItineraryActivity, error)
	getItineraryActivity      func(ctx context.Context, itineraryID, id string) (*types.ItineraryActivity, error)
	listItineraryActivities   func(ctx context.Context, itineraryID string) ([]*types.ItineraryActivity, error)
	updateItineraryActivity   func(ctx context.Context, itineraryID, id string, update *types.ItineraryActivityUpdate) (*types.ItineraryActivity, error)
	deleteItineraryActivity   func(ctx context.Context, itineraryID, id string) error
	nextOrderIndex            func(ctx context.Context, itineraryID string) (int, error)
	setItineraryActivityOrder func(ctx context.Context, id string, order int) error
}

func (m *itineraryStoreMock) CreateItinerary(ctx context.Context, it *types.Itinerary) (*types.Itinerary, error) {
	return m.createItinerary(ctx, it)
}
func (m *itineraryStoreMock) GetItinerary(ctx context.Context, tripID, id string) (*types.Itinerary, error) {
	return m.getItinerary(ctx, tripID, id)
}
func (m *itineraryStoreMock) ListItineraries(ctx context.Context, tripID string, filter types.ItineraryFilter, page types.PageRequest) ([]*types.Itinerary, int64, error) {
	return m.listItineraries(ctx, tripID, filter, page)
}
func (m *itineraryStoreMock) UpdateItinerary(ctx context.Context, tripID, id string, update *types.ItineraryUpdate) (*types.Itinerary, error) {
	return m.updateItinerary(ctx, tripID, id, update)
}
func (m *itineraryStoreMock) DeleteItinerary(ctx context.Context, tripID, id string) error {
	return m.deleteItinerary(ctx, tripID, id)
}
func (m *itineraryStoreMock) ExistsForDate(ctx context.Context, tripID string, date time.Time, excludeID string) (bool, error) {
	return m.existsForDate(ctx, tripID, date, excludeID)
}
func (m *itineraryStoreMock) GetItineraryStats(ctx context.Context, tripID string) (*types.ItineraryStats, error) {
	return m.getItineraryStats(ctx, tripID)
}
func (m *itineraryStoreMock) CreateItineraryActivity(ctx context.Context, ia *types.ItineraryActivity) (*types.ItineraryActivity, error) {
	return m.createItineraryActivity(ctx, ia)
}
func (m *itineraryStoreMock) GetItineraryActivity(ctx context.Context, itineraryID, id string) (*types.ItineraryActivity, error) {
	return m.getItineraryActivity(ctx, itineraryID, id)
}
func (m *itineraryStoreMock) ListItineraryActivities(ctx context.Context, itineraryID string) ([]*types.ItineraryActivity, error) {
	return m.listItineraryActivities(ctx, itineraryID)
}
func (m *itineraryStoreMock) UpdateItineraryActivity(ctx context.Context, itineraryID, id string, update *types.ItineraryActivityUpdate) (*types.ItineraryActivity, error) {
	return m.updateItineraryActivity(ctx, itineraryID, id, update)
}
func (m *itineraryStoreMock) DeleteItineraryActivity(ctx context.Context, itineraryID, id string) error {
	return m.deleteItineraryActivity(ctx, itineraryID, id)
}
func (m *itineraryStoreMock) NextOrderIndex(ctx context.Context, itineraryID string) (int, error) {
	return m.nextOrderIndex(ctx, itineraryID)
}
func (m *itineraryStoreMock) SetItineraryActivityOrder(ctx context.Context, id string, order int) error {
	return m.setItineraryActivityOrder(ctx, id, order)
}

type activityStoreMock struct {
	createActivity          func(ctx context.Context, a *types.Activity) (*types.Activity, error)
	getActivity             func(ctx context.Context, tripID, id string) (*types.Activity, error)
	listActivities          func(ctx context.Context, tripID string, filter types.ActivityFilter, page types.PageRequest) ([]*types.Activity, int64, error)
	updateActivity          func(ctx context.Context, tripID, id string, update *types.ActivityUpdate) (*types.Activity, error)
	deleteActivity          func(ctx context.Context, tripID, id string) error
	scheduledReferenceCount func(ctx context.Context, activityID string) (int64, error)
}

func (m *activityStoreMock) CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error) {
	return m.createActivity(ctx, a)
}
func (m *activityStoreMock) GetActivity(ctx context.Context, tripID, id string) (*types.Activity, error) {
	return m.getActivity(ctx, tripID, id)
}
func (m *activityStoreMock) ListActivities(ctx context.Context, tripID string, filter types.ActivityFilter, page types.PageRequest) ([]*types.Activity, int64, error) {
	return m.listActivities(ctx, tripID, filter, page)
}
func (m *activityStoreMock) UpdateActivity(ctx context.Context, tripID, id string, update *types.ActivityUpdate) (*types.Activity, error) {
	return m.updateActivity(ctx, tripID, id, update)
}
func (m *activityStoreMock) DeleteActivity(ctx context.Context, tripID, id string) error {
	return m.deleteActivity(ctx, tripID, id)
}
func (m *activityStoreMock) ScheduledReferenceCount(ctx context.Context, activityID string) (int64, error) {
	return m.scheduledReferenceCount(ctx, activityID)
}

type accommodationStoreMock struct {
	createAccommodation func(ctx context.Context, a *types.Accommodation) (*types.Accommodation, error)
	getAccommodation    func(ctx context.Context, tripID, id string) (*types.Accommodation, error)
	listAccommodations  func(ctx context.Context, tripID string, filter types.AccommodationFilter, page types.PageRequest) ([]*types.Accommodation, int64, error)
	updateAccommodation func(ctx context.Context, tripID, id string, update *types.AccommodationUpdate) (*types.Accommodation, error)
	deleteAccommodation func(ctx context.Context, tripID, id string) error
	countOverlapping    func(ctx context.Context, tripID string, checkIn, checkOut time.Time, excludeID string) (int64, error)
}

func (m *accommodationStoreMock) CreateAccommodation(ctx context.Context, a *types.Accommodation) (*types.Accommodation, error) {
	return m.createAccommodation(ctx, a)
}
func (m *accommodationStoreMock) GetAccommodation(ctx context.Context, tripID, id string) (*types.Accommodation, error) {
	return m.getAccommodation(ctx, tripID, id)
}
func (m *accommodationStoreMock) ListAccommodations(ctx context.Context, tripID string, filter types.AccommodationFilter, page types.PageRequest) ([]*types.Accommodation, int64, error) {
	return m.listAccommodations(ctx, tripID, filter, page)
}
func (m *accommodationStoreMock) UpdateAccommodation(ctx context.Context, tripID, id string, update *types.AccommodationUpdate) (*types.Accommodation, error) {
	return m.updateAccommodation(ctx, tripID, id, update)
}
func (m *accommodationStoreMock) DeleteAccommodation(ctx context.Context, tripID, id string) error {
	return m.deleteAccommodation(ctx, tripID, id)
}
func (m *accommodationStoreMock) CountOverlapping(ctx context.Context, tripID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	return m.countOverlapping(ctx, tripID, checkIn, checkOut, excludeID)
}

type budgetStoreMock struct {
	createBudget     func(ctx context.Context, b *types.Budget) (*types.Budget, error)
	getBudget        func(ctx context.Context, tripID, id string) (*types.Budget, error)
	listBudgets      func(ctx context.Context, tripID string, filter types.BudgetFilter, page types.PageRequest) ([]*types.Budget, int64, error)
	updateBudget     func(ctx context.Context, tripID, id string, update *types.BudgetUpdate) (*types.Budget, error)
	deleteBudget     func(ctx context.Context, tripID, id string) error
	existsCategory   func(ctx context.Context, tripID string, category types.BudgetCategory, excludeID string) (bool, error)
	getBudgetSummary func(ctx context.Context, tripID string) (*types.BudgetSummary, error)
}

func (m *budgetStoreMock) CreateBudget(ctx context.Context, b *types.Budget) (*types.Budget, error) {
	return m.createBudget(ctx, b)
}
func (m *budgetStoreMock) GetBudget(ctx context.Context, tripID, id string) (*types.Budget, error) {
	return m.getBudget(ctx, tripID, id)
}
func (m *budgetStoreMock) ListBudgets(ctx context.Context, tripID string, filter types.BudgetFilter, page types.PageRequest) ([]*types.Budget, int64, error) {
	return m.listBudgets(ctx, tripID, filter, page)
}
func (m *budgetStoreMock) UpdateBudget(ctx context.Context, tripID, id string, update *types.BudgetUpdate) (*types.Budget, error) {
	return m.updateBudget(ctx, tripID, id, update)
}
func (m *budgetStoreMock) DeleteBudget(ctx context.Context, tripID, id string) error {
	return m.deleteBudget(ctx, tripID, id)
}
func (m *budgetStoreMock) ExistsCategory(ctx context.Context, tripID string, category types.BudgetCategory, excludeID string) (bool, error) {
	return m.existsCategory(ctx, tripID, category, excludeID)
}
func (m *budgetStoreMock) GetBudgetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error) {
	return m.getBudgetSummary(ctx, tripID)
}

type expenseStoreMock struct {
	createExpense     func(ctx context.Context, e *types.Expense) (*types.Expense, error)
	getExpense        func(ctx context.Context, tripID, id string) (*types.Expense, error)
	listExpenses      func(ctx context.Context, tripID string, filter types.ExpenseFilter, page types.PageRequest) ([]*types.Expense, int64, error)
	updateExpense     func(ctx context.Context, tripID, id string, update *types.ExpenseUpdate) (*types.Expense, error)
	deleteExpense     func(ctx context.Context, tripID, id string) error
	getExpenseSummary func(ctx context.Context, tripID string) (*types.ExpenseSummary, error)
}

func (m *expenseStoreMock) CreateExpense(ctx context.Context, e *types.Expense) (*types.Expense, error) {
	return m.createExpense(ctx, e)
}
func (m *expenseStoreMock) GetExpense(ctx context.Context, tripID, id string) (*types.Expense, error) {
	return m.getExpense(ctx, tripID, id)
}
func (m *expenseStoreMock) ListExpenses(ctx context.Context, tripID string, filter types.ExpenseFilter, page types.PageRequest) ([]*types.Expense, int64, error) {
	return m.listExpenses(ctx, tripID, filter, page)
}
func (m *expenseStoreMock) UpdateExpense(ctx context.Context, tripID, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	return m.updateExpense(ctx, tripID, id, update)
}
func (m *expenseStoreMock) DeleteExpense(ctx context.Context, tripID, id string) error {
	return m.deleteExpense(ctx, tripID, id)
}
func (m *expenseStoreMock) GetExpenseSummary(ctx context.Context, tripID string) (*types.ExpenseSummary, error) {
	return m.getExpenseSummary(ctx, tripID)
}

type documentStoreMock struct {
	createDocument   func(ctx context.Context, d *types.Document) (*types.Document, error)
	getDocument      func(ctx context.Context, tripID, id string) (*types.Document, error)
	listDocuments    func(ctx context.Context, tripID string, filter types.DocumentFilter, page types.PageRequest) ([]*types.Document, int64, error)
	updateDocument   func(ctx context.Context, tripID, id string, update *types.DocumentUpdate) (*types.Document, error)
	deleteDocument   func(ctx context.Context, tripID, id string) error
	existsName       func(ctx context.Context, tripID, name, excludeID string) (bool, error)
	getDocumentStats func(ctx context.Context, tripID string, expiringWithin time.Duration) (*types.DocumentStats, error)
}

func (m *documentStoreMock) CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error) {
	return m.createDocument(ctx, d)
}
func (m *documentStoreMock) GetDocument(ctx context.Context, tripID, id string) (*types.Document, error) {
	return m.getDocument(ctx, tripID, id)
}
func (m *documentStoreMock) ListDocuments(ctx context.Context, tripID string, filter types.DocumentFilter, page types.PageRequest) ([]*types.Document, int64, error) {
	return m.listDocuments(ctx, tripID, filter, page)
}
func (m *documentStoreMock) UpdateDocument(ctx context.Context, tripID, id string, update *types.DocumentUpdate) (*types.Document, error) {
	return m.updateDocument(ctx, tripID, id, update)
}
func (m *documentStoreMock) DeleteDocument(ctx context.Context, tripID, id string) error {
	return m.deleteDocument(ctx, tripID, id)
}
func (m *documentStoreMock) ExistsName(ctx context.Context, tripID, name, excludeID string) (bool, error) {
	return m.existsName(ctx, tripID, name, excludeID)
}
func (m *documentStoreMock) GetDocumentStats(ctx context.Context, tripID string, expiringWithin time.Duration) (*types.DocumentStats, error) {
	return m.getDocumentStats(ctx, tripID, expiringWithin)
}
