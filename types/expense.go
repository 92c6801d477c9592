package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a spent amount, optionally linked to a budget of the same trip.
type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	BudgetID    *string         `json:"budgetId,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ExpenseCreate struct {
	BudgetID    *string         `json:"budgetId" validate:"omitempty,uuid"`
	Description string          `json:"description" validate:"required,max=300"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	Date        time.Time       `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"max=100"`
	Location    string          `json:"location" validate:"max=300"`
	ReceiptURL  string          `json:"receiptUrl" validate:"omitempty,url"`
	Notes       string          `json:"notes" validate:"max=2000"`
}

type ExpenseUpdate struct {
	BudgetID    NullableID       `json:"budgetId"`
	Description *string          `json:"description" validate:"omitempty,max=300"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" validate:"omitempty,len=3"`
	Date        *time.Time       `json:"date"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Location    *string          `json:"location" validate:"omitempty,max=300"`
	ReceiptURL  *string          `json:"receiptUrl" validate:"omitempty,url"`
	Notes       *string          `json:"notes" validate:"omitempty,max=2000"`
}

type ExpenseFilter struct {
	Search   string
	Category string
}

// ExpenseCategorySummary is one row of the grouped expense rollup.
type ExpenseCategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// ExpenseSummary groups totals per free-text category. Amounts are summed raw
// across currencies; no conversion is attempted.
type ExpenseSummary struct {
	Total      decimal.Decimal          `json:"total"`
	Count      int64                    `json:"count"`
	ByCategory []ExpenseCategorySummary `json:"byCategory"`
}

type ExpenseListResponse struct {
	Items      []*Expense     `json:"items"`
	Pagination PageInfo       `json:"pagination"`
	Summary    ExpenseSummary `json:"summary"`
}
