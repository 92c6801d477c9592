package types

import "time"

// Itinerary is one calendar day's plan within a trip. At most one itinerary
// exists per trip per calendar date.
type Itinerary struct {
	ID         string               `json:"id"`
	TripID     string               `json:"tripId"`
	Date       time.Time            `json:"date"`
	Notes      string               `json:"notes,omitempty"`
	Activities []*ItineraryActivity `json:"activities,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type ItineraryCreate struct {
	Date  time.Time `json:"date" validate:"required"`
	Notes string    `json:"notes" validate:"max=5000"`
}

type ItineraryUpdate struct {
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes" validate:"omitempty,max=5000"`
}

type ItineraryFilter struct {
	Search string
}

// ItineraryActivity schedules an Activity into an itinerary day with a dense
// 1-based order. Order values stay contiguous after deletion.
type ItineraryActivity struct {
	ID          string     `json:"id"`
	ItineraryID string     `json:"itineraryId"`
	ActivityID  string     `json:"activityId"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	OrderIndex  int        `json:"order"`
	Notes       string     `json:"notes,omitempty"`
	Activity    *Activity  `json:"activity,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ItineraryActivityCreate struct {
	ActivityID string     `json:"activityId" validate:"required,uuid"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Notes      string     `json:"notes" validate:"max=2000"`
}

type ItineraryActivityUpdate struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

// ItineraryStats summarizes a trip's day plans for the list endpoint.
type ItineraryStats struct {
	Days                 int64            `json:"days"`
	ScheduledActivities  int64            `json:"scheduledActivities"`
	ActivityCategoryDist map[string]int64 `json:"activityCategories"`
}

type ItineraryListResponse struct {
	Items      []*Itinerary   `json:"items"`
	Pagination PageInfo       `json:"pagination"`
	Statistics ItineraryStats `json:"statistics"`
}
