package types

import "time"

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "PLANNING"  // Trip is being set up
	TripStatusActive    TripStatus = "ACTIVE"    // Trip is currently ongoing
	TripStatusCompleted TripStatus = "COMPLETED" // Trip has finished
)

// IsValid checks if the status is a valid trip status
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusPlanning, TripStatusActive, TripStatusCompleted:
		return true
	default:
		return false
	}
}

func (ts TripStatus) String() string {
	return string(ts)
}

// Trip is the root of the ownership boundary. Every nested resource is only
// reachable after proving the trip belongs to the requesting user.
type Trip struct {
	ID            string     `json:"id"`
	UserID        string     `json:"-"`
	Name          string     `json:"name"`
	Destination   string     `json:"destination"`
	Description   string     `json:"description,omitempty"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	Status        TripStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// TripCreate is the input for creating a trip.
type TripCreate struct {
	Name          string     `json:"name" validate:"required,max=200"`
	Destination   string     `json:"destination" validate:"required,max=200"`
	Description   string     `json:"description" validate:"max=2000"`
	StartDate     time.Time  `json:"startDate" validate:"required"`
	EndDate       time.Time  `json:"endDate" validate:"required"`
	CoverImageURL string     `json:"coverImageUrl" validate:"omitempty,url"`
	Status        TripStatus `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE COMPLETED"`
}

// TripUpdate is the partial-update input for a trip. Nil means "leave as is".
type TripUpdate struct {
	Name          *string     `json:"name" validate:"omitempty,max=200"`
	Destination   *string     `json:"destination" validate:"omitempty,max=200"`
	Description   *string     `json:"description" validate:"omitempty,max=2000"`
	StartDate     *time.Time  `json:"startDate"`
	EndDate       *time.Time  `json:"endDate"`
	CoverImageURL *string     `json:"coverImageUrl" validate:"omitempty,url"`
	Status        *TripStatus `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE COMPLETED"`
}

// TripFilter enumerates the accepted list filters for trips.
type TripFilter struct {
	Search string
	Status *TripStatus
}

// TripListResponse is the envelope for the trip list endpoint.
type TripListResponse struct {
	Items      []*Trip  `json:"items"`
	Pagination PageInfo `json:"pagination"`
}
