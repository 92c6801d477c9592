package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetCategory string

const (
	BudgetCategoryAccommodation  BudgetCategory = "ACCOMMODATION"
	BudgetCategoryTransportation BudgetCategory = "TRANSPORTATION"
	BudgetCategoryFood           BudgetCategory = "FOOD"
	BudgetCategoryActivities     BudgetCategory = "ACTIVITIES"
	BudgetCategoryShopping       BudgetCategory = "SHOPPING"
	BudgetCategoryEmergency      BudgetCategory = "EMERGENCY"
	BudgetCategoryOther          BudgetCategory = "OTHER"
)

func (c BudgetCategory) IsValid() bool {
	switch c {
	case BudgetCategoryAccommodation, BudgetCategoryTransportation, BudgetCategoryFood,
		BudgetCategoryActivities, BudgetCategoryShopping, BudgetCategoryEmergency,
		BudgetCategoryOther:
		return true
	default:
		return false
	}
}

// Budget is the planned amount for one category. One row per (trip, category).
// Deleting a budget unlinks its expenses rather than deleting them.
type Budget struct {
	ID            string          `json:"id"`
	TripID        string          `json:"tripId"`
	Category      BudgetCategory  `json:"category"`
	PlannedAmount decimal.Decimal `json:"plannedAmount"`
	// ActualAmount is derived per request from linked expenses. Amounts are
	// summed raw across currencies; no conversion is attempted.
	ActualAmount decimal.Decimal `json:"actualAmount"`
	Currency     string          `json:"currency"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type BudgetCreate struct {
	Category      BudgetCategory  `json:"category" validate:"required,oneof=ACCOMMODATION TRANSPORTATION FOOD ACTIVITIES SHOPPING EMERGENCY OTHER"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" validate:"required"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
	Notes         string          `json:"notes" validate:"max=2000"`
}

type BudgetUpdate struct {
	Category      *BudgetCategory  `json:"category" validate:"omitempty,oneof=ACCOMMODATION TRANSPORTATION FOOD ACTIVITIES SHOPPING EMERGENCY OTHER"`
	PlannedAmount *decimal.Decimal `json:"plannedAmount"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}

type BudgetFilter struct {
	Category *BudgetCategory
}

// BudgetSummary is the trip-level planned-vs-actual rollup.
type BudgetSummary struct {
	TotalPlanned   decimal.Decimal `json:"totalPlanned"`
	TotalActual    decimal.Decimal `json:"totalActual"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentageUsed"`
}

type BudgetListResponse struct {
	Items      []*Budget     `json:"items"`
	Pagination PageInfo      `json:"pagination"`
	Summary    BudgetSummary `json:"summary"`
}
