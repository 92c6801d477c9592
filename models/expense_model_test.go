package models

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

func TestCreateExpenseBudgetScoping(t *testing.T) {
	knownBudget := "9b2f3d44-13a7-47d0-8f2a-5f3f1f6f9001"
	budgets := &budgetStoreMock{
		getBudget: func(_ context.Context, _, id string) (*types.Budget, error) {
			if id == knownBudget {
				return &types.Budget{ID: id, TripID: "trip-1"}, nil
			}
			return nil, errNotFound
		},
	}
	expenses := &expenseStoreMock{
		createExpense: func(_ context.Context, e *types.Expense) (*types.Expense, error) {
			e.ID = "exp-1"
			return e, nil
		},
	}
	m := NewExpenseModel(ownedTripStore(testTrip()), expenses, budgets)

	valid := types.ExpenseCreate{
		Description: "Dinner at Time Out Market",
		Amount:      decimal.NewFromInt(42),
		Date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	t.Run("budget of another trip is a 404", func(t *testing.T) {
		input := valid
		foreign := "9b2f3d44-13a7-47d0-8f2a-5f3f1f6f9999"
		input.BudgetID = &foreign
		_, appErr := m.CreateExpense(context.Background(), "trip-1", "user-1", &input)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("date outside the trip is rejected", func(t *testing.T) {
		input := valid
		input.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		_, appErr := m.CreateExpense(context.Background(), "trip-1", "user-1", &input)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
	})

	t.Run("negative amount is a field error", func(t *testing.T) {
		input := valid
		input.Amount = decimal.NewFromInt(-42)
		_, appErr := m.CreateExpense(context.Background(), "trip-1", "user-1", &input)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "amount", appErr.Fields[0].Field)
	})

	t.Run("linked expense is created", func(t *testing.T) {
		input := valid
		input.BudgetID = &knownBudget
		e, appErr := m.CreateExpense(context.Background(), "trip-1", "user-1", &input)
		require.Nil(t, appErr)
		assert.Equal(t, "exp-1", e.ID)
		require.NotNil(t, e.BudgetID)
		assert.Equal(t, knownBudget, *e.BudgetID)
	})
}

func TestUpdateExpenseBudgetLink(t *testing.T) {
	knownBudget := "9b2f3d44-13a7-47d0-8f2a-5f3f1f6f9001"
	budgets := &budgetStoreMock{
		getBudget: func(_ context.Context, _, id string) (*types.Budget, error) {
			if id == knownBudget {
				return &types.Budget{ID: id, TripID: "trip-1"}, nil
			}
			return nil, errNotFound
		},
	}
	var stored *types.ExpenseUpdate
	expenses := &expenseStoreMock{
		updateExpense: func(_ context.Context, _, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
			stored = update
			return &types.Expense{ID: id}, nil
		},
	}
	m := NewExpenseModel(ownedTripStore(testTrip()), expenses, budgets)

	t.Run("absent field leaves the link alone", func(t *testing.T) {
		var update types.ExpenseUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"split three ways"}`), &update))
		_, appErr := m.UpdateExpense(context.Background(), "trip-1", "exp-1", "user-1", &update)
		require.Nil(t, appErr)
		assert.False(t, stored.BudgetID.Set)
	})

	t.Run("explicit null clears the link", func(t *testing.T) {
		var update types.ExpenseUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"budgetId":null}`), &update))
		_, appErr := m.UpdateExpense(context.Background(), "trip-1", "exp-1", "user-1", &update)
		require.Nil(t, appErr)
		assert.True(t, stored.BudgetID.Set)
		assert.Nil(t, stored.BudgetID.Value)
	})

	t.Run("relink to a foreign budget is a 404", func(t *testing.T) {
		var update types.ExpenseUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"budgetId":"9b2f3d44-13a7-47d0-8f2a-5f3f1f6f9999"}`), &update))
		_, appErr := m.UpdateExpense(context.Background(), "trip-1", "exp-1", "user-1", &update)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("malformed relink value is a field error", func(t *testing.T) {
		var update types.ExpenseUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"budgetId":"groceries"}`), &update))
		_, appErr := m.UpdateExpense(context.Background(), "trip-1", "exp-1", "user-1", &update)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "budgetId", appErr.Fields[0].Field)
	})
}
