package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ExpenseStore implements store.ExpenseStore using PostgreSQL.
type ExpenseStore struct {
	db DB
}

func NewExpenseStore(db DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

const expenseColumns = `id, trip_id, budget_id, description, amount, currency, date, category, location, receipt_url, notes, created_at, updated_at`

func scanExpense(row pgx.Row) (*types.Expense, error) {
	e := &types.Expense{}
	err := row.Scan(
		&e.ID,
		&e.TripID,
		&e.BudgetID,
		&e.Description,
		&e.Amount,
		&e.Currency,
		&e.Date,
		&e.Category,
		&e.Location,
		&e.ReceiptURL,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseStore) CreateExpense(ctx context.Context, e *types.Expense) (*types.Expense, error) {
	query := `
		INSERT INTO expenses (trip_id, budget_id, description, amount, currency, date, category, location, receipt_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + expenseColumns

	row := s.db.QueryRow(ctx, query,
		e.TripID, e.BudgetID, e.Description, e.Amount, e.Currency,
		e.Date, e.Category, e.Location, e.ReceiptURL, e.Notes,
	)
	return scanExpense(row)
}

func (s *ExpenseStore) GetExpense(ctx context.Context, tripID, id string) (*types.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND trip_id = $2`
	return scanExpense(s.db.QueryRow(ctx, query, id, tripID))
}

func (s *ExpenseStore) ListExpenses(ctx context.Context, tripID string, filter types.ExpenseFilter, page types.PageRequest) ([]*types.Expense, int64, error) {
	where := `WHERE trip_id = $1`
	args := []any{tripID}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(` AND (description ILIKE $%d OR location ILIKE $%d)`, len(args), len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM expenses %s ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		expenseColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*types.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ExpenseStore) UpdateExpense(ctx context.Context, tripID, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	// The budget link is tri-state: untouched, cleared, or relinked. The
	// flag distinguishes "leave as is" from "set to NULL".
	query := `
		UPDATE expenses
		SET budget_id = CASE WHEN $1::bool THEN $2::uuid ELSE budget_id END,
			description = COALESCE($3::text, description),
			amount = COALESCE($4::numeric, amount),
			currency = COALESCE($5::text, currency),
			date = COALESCE($6::date, date),
			category = COALESCE($7::text, category),
			location = COALESCE($8::text, location),
			receipt_url = COALESCE($9::text, receipt_url),
			notes = COALESCE($10::text, notes),
			updated_at = NOW()
		WHERE id = $11 AND trip_id = $12
		RETURNING ` + expenseColumns

	row := s.db.QueryRow(ctx, query,
		update.BudgetID.Set, update.BudgetID.Value, update.Description,
		update.Amount, update.Currency, update.Date, update.Category,
		update.Location, update.ReceiptURL, update.Notes, id, tripID,
	)
	return scanExpense(row)
}

func (s *ExpenseStore) DeleteExpense(ctx context.Context, tripID, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetExpenseSummary groups totals per free-text category. Amounts are summed
// raw across currencies; no conversion is attempted.
func (s *ExpenseStore) GetExpenseSummary(ctx context.Context, tripID string) (*types.ExpenseSummary, error) {
	query := `
		SELECT COALESCE(NULLIF(category, ''), 'uncategorized'), SUM(amount), COUNT(*)
		FROM expenses
		WHERE trip_id = $1
		GROUP BY 1
		ORDER BY 2 DESC`

	rows, err := s.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &types.ExpenseSummary{}
	for rows.Next() {
		var row types.ExpenseCategorySummary
		if err := rows.Scan(&row.Category, &row.Total, &row.Count); err != nil {
			return nil, err
		}
		summary.ByCategory = append(summary.ByCategory, row)
		summary.Total = summary.Total.Add(row.Total)
		summary.Count += row.Count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summary, nil
}
