package models

import (
	"context"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// BudgetModel owns planned amounts, one per (trip, category).
type BudgetModel struct {
	trips   store.TripStore
	budgets store.BudgetStore
}

func NewBudgetModel(trips store.TripStore, budgets store.BudgetStore) *BudgetModel {
	return &BudgetModel{trips: trips, budgets: budgets}
}

func (m *BudgetModel) CreateBudget(ctx context.Context, tripID, userID string, input *types.BudgetCreate) (*types.Budget, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if input.PlannedAmount.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "plannedAmount", Message: "must not be negative"},
		})
	}

	exists, err := m.budgets.ExistsCategory(ctx, tripID, input.Category, "")
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if exists {
		return nil, apperrors.BusinessRuleConflict("Duplicate budget category", "a budget for this category already exists")
	}

	created, err := m.budgets.CreateBudget(ctx, &types.Budget{
		TripID:        tripID,
		Category:      input.Category,
		PlannedAmount: input.PlannedAmount,
		Currency:      input.Currency,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *BudgetModel) GetBudget(ctx context.Context, tripID, id, userID string) (*types.Budget, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	b, err := m.budgets.GetBudget(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Budget", id)
	}
	return b, nil
}

func (m *BudgetModel) ListBudgets(ctx context.Context, tripID, userID string, filter types.BudgetFilter, page types.PageRequest) (*types.BudgetListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	items, total, err := m.budgets.ListBudgets(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Budget{}
	}

	summary, err := m.budgets.GetBudgetSummary(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.BudgetListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
		Summary:    *summary,
	}, nil
}

func (m *BudgetModel) UpdateBudget(ctx context.Context, tripID, id, userID string, update *types.BudgetUpdate) (*types.Budget, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if update.PlannedAmount != nil && update.PlannedAmount.IsNegative() {
		return nil, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
			{Field: "plannedAmount", Message: "must not be negative"},
		})
	}

	if update.Category != nil {
		exists, err := m.budgets.ExistsCategory(ctx, tripID, *update.Category, id)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		if exists {
			return nil, apperrors.BusinessRuleConflict("Duplicate budget category", "a budget for this category already exists")
		}
	}

	updated, err := m.budgets.UpdateBudget(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Budget", id)
	}
	return updated, nil
}

// DeleteBudget unlinks the budget's expenses and removes it. Expenses are
// never deleted with their budget.
func (m *BudgetModel) DeleteBudget(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.budgets.DeleteBudget(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Budget", id)
	}
	return nil
}
