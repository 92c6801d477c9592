package models

import (
	"context"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ExpenseModel owns spent amounts and their optional budget link.
type ExpenseModel struct {
	trips    store.TripStore
	expenses store.ExpenseStore
	budgets  store.BudgetStore
}

func NewExpenseModel(trips store.TripStore, expenses store.ExpenseStore, budgets store.BudgetStore) *ExpenseModel {
	return &ExpenseModel{trips: trips, expenses: expenses, budgets: budgets}
}

// checkBudgetRef resolves a budget reference within the same trip. Foreign and
// absent budgets look identical to the caller.
func (m *ExpenseModel) checkBudgetRef(ctx context.Context, tripID string, budgetID *string) *apperrors.AppError {
	if budgetID == nil {
		return nil
	}
	if _, err := m.budgets.GetBudget(ctx, tripID, *budgetID); err != nil {
		return mapStoreError(err, "Budget", *budgetID)
	}
	return nil
}

func (m *ExpenseModel) CreateExpense(ctx context.Context, tripID, userID string, input *types.ExpenseCreate) (*types.Expense, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if input.Amount.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "amount", Message: "must not be negative"},
		})
	}
	if !dateWithinTrip(trip, input.Date) {
		return nil, apperrors.BusinessRuleConflict("Expense date out of range", "date must fall within the trip dates")
	}
	if appErr := m.checkBudgetRef(ctx, tripID, input.BudgetID); appErr != nil {
		return nil, appErr
	}

	created, err := m.expenses.CreateExpense(ctx, &types.Expense{
		TripID:      tripID,
		BudgetID:    input.BudgetID,
		Description: input.Description,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Date:        input.Date,
		Category:    input.Category,
		Location:    input.Location,
		ReceiptURL:  input.ReceiptURL,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *ExpenseModel) GetExpense(ctx context.Context, tripID, id, userID string) (*types.Expense, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	e, err := m.expenses.GetExpense(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Expense", id)
	}
	return e, nil
}

func (m *ExpenseModel) ListExpenses(ctx context.Context, tripID, userID string, filter types.ExpenseFilter, page types.PageRequest) (*types.ExpenseListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	items, total, err := m.expenses.ListExpenses(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Expense{}
	}

	summary, err := m.expenses.GetExpenseSummary(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.ExpenseListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
		Summary:    *summary,
	}, nil
}

func (m *ExpenseModel) UpdateExpense(ctx context.Context, tripID, id, userID string, update *types.ExpenseUpdate) (*types.Expense, *apperrors.AppError) {
	trip, appErr := guardTrip(ctx, m.trips, tripID, userID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if update.Amount != nil && update.Amount.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "amount", Message: "must not be negative"},
		})
	}
	if update.Date != nil && !dateWithinTrip(trip, *update.Date) {
		return nil, apperrors.BusinessRuleConflict("Expense date out of range", "date must fall within the trip dates")
	}
	if appErr := checkRefFormat("budgetId", update.BudgetID); appErr != nil {
		return nil, appErr
	}
	if appErr := m.checkBudgetRef(ctx, tripID, update.BudgetID.Value); appErr != nil {
		return nil, appErr
	}

	updated, err := m.expenses.UpdateExpense(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Expense", id)
	}
	return updated, nil
}

func (m *ExpenseModel) DeleteExpense(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.expenses.DeleteExpense(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Expense", id)
	}
	return nil
}
