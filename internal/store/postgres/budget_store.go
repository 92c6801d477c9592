package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// BudgetStore implements store.BudgetStore using PostgreSQL.
type BudgetStore struct {
	db DB
}

func NewBudgetStore(db DB) *BudgetStore {
	return &BudgetStore{db: db}
}

// actualAmount is derived on every read: the raw sum of linked expense
// amounts, no currency conversion.
const budgetColumns = `b.id, b.trip_id, b.category, b.planned_amount, b.currency, b.notes, b.created_at, b.updated_at,
	COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.budget_id = b.id), 0) AS actual_amount`

func scanBudget(row pgx.Row) (*types.Budget, error) {
	b := &types.Budget{}
	err := row.Scan(
		&b.ID,
		&b.TripID,
		&b.Category,
		&b.PlannedAmount,
		&b.Currency,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.ActualAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BudgetStore) CreateBudget(ctx context.Context, b *types.Budget) (*types.Budget, error) {
	query := `
		INSERT INTO budgets AS b (trip_id, category, planned_amount, currency, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + budgetColumns

	row := s.db.QueryRow(ctx, query, b.TripID, b.Category, b.PlannedAmount, b.Currency, b.Notes)
	return scanBudget(row)
}

func (s *BudgetStore) GetBudget(ctx context.Context, tripID, id string) (*types.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets b WHERE b.id = $1 AND b.trip_id = $2`
	return scanBudget(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *BudgetStore) ListBudgets(ctx context.Context, tripID string, filter types.BudgetFilter, page types.PageRequest) ([]*types.Budget, int64, error) {
	where := `WHERE b.trip_id = $1`
	args := []any{tripID}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		where += fmt.Sprintf(` AND b.category = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM budgets b `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM budgets b %s ORDER BY b.category ASC LIMIT $%d OFFSET $%d`,
		budgetColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *BudgetStore) UpdateBudget(ctx context.Context, tripID, id string, update *types.BudgetUpdate) (*types.Budget, error) {
	query := `
		UPDATE budgets AS b
		SET category = COALESCE($1::text, category),
			planned_amount = COALESCE($2::numeric, planned_amount),
			currency = COALESCE($3::text, currency),
			notes = COALESCE($4::text, notes),
			updated_at = NOW()
		WHERE b.id = $5 AND b.trip_id = $6
		RETURNING ` + budgetColumns

	row := s.db.QueryRow(ctx, query, update.Category, update.PlannedAmount, update.Currency, update.Notes, id, tripID)
	return scanBudget(row)
}

// DeleteBudget unlinks expenses first, then removes the budget. Expenses are
// kept; only their back-reference is cleared.
func (s *BudgetStore) DeleteBudget(ctx context.Context, tripID, id string) error {
	if _, err := s.db.Exec(ctx, `UPDATE expenses SET budget_id = NULL, updated_at = NOW() WHERE budget_id = $1 AND trip_id = $2`, id, tripID); err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *BudgetStore) ExistsCategory(ctx context.Context, tripID string, category types.BudgetCategory, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM budgets WHERE trip_id = $1 AND category = $2 AND ($3::uuid IS NULL OR id <> $3::uuid))`
	var exists bool
	err := s.db.QueryRow(ctx, query, tripID, category, nullableID(excludeID)).Scan(&exists)
	return exists, err
}

func (s *BudgetStore) GetBudgetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error) {
	query := `
		SELECT COALESCE(SUM(b.planned_amount), 0),
			COALESCE(SUM((SELECT COALESCE(SUM(e.amount), 0) FROM expenses e WHERE e.budget_id = b.id)), 0)
		FROM budgets b
		WHERE b.trip_id = $1`

	var planned, actual decimal.Decimal
	if err := s.db.QueryRow(ctx, query, tripID).Scan(&planned, &actual); err != nil {
		return nil, err
	}

	summary := &types.BudgetSummary{
		TotalPlanned: planned,
		TotalActual:  actual,
		Remaining:    planned.Sub(actual),
	}
	if !planned.IsZero() {
		pct, _ := actual.Div(planned).Mul(decimal.NewFromInt(100)).Float64()
		summary.PercentageUsed = pct
	}
	return summary, nil
}
