package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/wayfarer-backend/types"
)

func TestUpdateExpenseBudgetColumn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewExpenseStore(mock)

	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	returned := func(budgetID *string) *pgxmock.Rows {
		return pgxmock.NewRows([]string{
			"id", "trip_id", "budget_id", "description", "amount", "currency",
			"date", "category", "location", "receipt_url", "notes", "created_at", "updated_at",
		}).AddRow(
			"exp-1", "trip-1", budgetID, "Dinner", decimal.NewFromInt(42), "EUR",
			now, "", "", "", "", now, now,
		)
	}
	updateQuery := `budget_id = CASE WHEN \$1::bool THEN \$2::uuid ELSE budget_id END`

	t.Run("explicit null clears the column", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs(
				true, (*string)(nil), (*string)(nil), (*decimal.Decimal)(nil),
				(*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil),
				(*string)(nil), (*string)(nil), "exp-1", "trip-1",
			).
			WillReturnRows(returned(nil))

		update := &types.ExpenseUpdate{BudgetID: types.NullableID{Set: true}}
		e, err := s.UpdateExpense(context.Background(), "trip-1", "exp-1", update)
		require.NoError(t, err)
		assert.Nil(t, e.BudgetID)
	})

	t.Run("absent field does not touch the column", func(t *testing.T) {
		budget := "9b2f3d44-13a7-47d0-8f2a-5f3f1f6f9001"
		mock.ExpectQuery(updateQuery).
			WithArgs(
				false, (*string)(nil), (*string)(nil), (*decimal.Decimal)(nil),
				(*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil),
				(*string)(nil), (*string)(nil), "exp-1", "trip-1",
			).
			WillReturnRows(returned(&budget))

		e, err := s.UpdateExpense(context.Background(), "trip-1", "exp-1", &types.ExpenseUpdate{})
		require.NoError(t, err)
		require.NotNil(t, e.BudgetID)
		assert.Equal(t, budget, *e.BudgetID)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
