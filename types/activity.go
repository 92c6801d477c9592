package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityCategory string

const (
	ActivityCategorySightseeing ActivityCategory = "SIGHTSEEING"
	ActivityCategoryAdventure   ActivityCategory = "ADVENTURE"
	ActivityCategoryCultural    ActivityCategory = "CULTURAL"
	ActivityCategoryRelaxation  ActivityCategory = "RELAXATION"
	ActivityCategoryFood        ActivityCategory = "FOOD"
	ActivityCategoryNightlife   ActivityCategory = "NIGHTLIFE"
	ActivityCategoryShopping    ActivityCategory = "SHOPPING"
	ActivityCategoryOther       ActivityCategory = "OTHER"
)

func (c ActivityCategory) IsValid() bool {
	switch c {
	case ActivityCategorySightseeing, ActivityCategoryAdventure, ActivityCategoryCultural,
		ActivityCategoryRelaxation, ActivityCategoryFood, ActivityCategoryNightlife,
		ActivityCategoryShopping, ActivityCategoryOther:
		return true
	default:
		return false
	}
}

// Activity is a trip-scoped catalog item. Itinerary entries and photos may
// reference it; deletion is blocked while any itinerary entry does.
type Activity struct {
	ID              string           `json:"id"`
	TripID          string           `json:"tripId"`
	Name            string           `json:"name"`
	Category        ActivityCategory `json:"category"`
	Location        string           `json:"location,omitempty"`
	Address         string           `json:"address,omitempty"`
	Latitude        *float64         `json:"latitude,omitempty"`
	Longitude       *float64         `json:"longitude,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	Currency        string           `json:"currency"`
	DurationMinutes *int             `json:"durationMinutes,omitempty"`
	Website         string           `json:"website,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	OpeningHours    string           `json:"openingHours,omitempty"`
	Rating          *int             `json:"rating,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ScheduledCount  int64            `json:"scheduledCount"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type ActivityCreate struct {
	Name            string           `json:"name" validate:"required,max=200"`
	Category        ActivityCategory `json:"category" validate:"required,oneof=SIGHTSEEING ADVENTURE CULTURAL RELAXATION FOOD NIGHTLIFE SHOPPING OTHER"`
	Location        string           `json:"location" validate:"max=300"`
	Address         string           `json:"address" validate:"max=300"`
	Latitude        *float64         `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64         `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Price           decimal.Decimal  `json:"price" validate:"omitempty"`
	Currency        string           `json:"currency" validate:"omitempty,len=3"`
	DurationMinutes *int             `json:"durationMinutes" validate:"omitempty,gt=0"`
	Website         string           `json:"website" validate:"omitempty,url"`
	Phone           string           `json:"phone" validate:"max=50"`
	OpeningHours    string           `json:"openingHours" validate:"max=200"`
	Rating          *int             `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes           string           `json:"notes" validate:"max=2000"`
}

type ActivityUpdate struct {
	Name            *string           `json:"name" validate:"omitempty,max=200"`
	Category        *ActivityCategory `json:"category" validate:"omitempty,oneof=SIGHTSEEING ADVENTURE CULTURAL RELAXATION FOOD NIGHTLIFE SHOPPING OTHER"`
	Location        *string           `json:"location" validate:"omitempty,max=300"`
	Address         *string           `json:"address" validate:"omitempty,max=300"`
	Latitude        *float64          `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64          `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Price           *decimal.Decimal  `json:"price"`
	Currency        *string           `json:"currency" validate:"omitempty,len=3"`
	DurationMinutes *int              `json:"durationMinutes" validate:"omitempty,gt=0"`
	Website         *string           `json:"website" validate:"omitempty,url"`
	Phone           *string           `json:"phone" validate:"omitempty,max=50"`
	OpeningHours    *string           `json:"openingHours" validate:"omitempty,max=200"`
	Rating          *int              `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes           *string           `json:"notes" validate:"omitempty,max=2000"`
}

type ActivityFilter struct {
	Search   string
	Category *ActivityCategory
}

type ActivityListResponse struct {
	Items      []*Activity `json:"items"`
	Pagination PageInfo    `json:"pagination"`
}
