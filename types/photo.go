package types

import "time"

// Photo is a trip image, optionally associated with an itinerary day and an
// activity of the same trip.
type Photo struct {
	ID           string     `json:"id"`
	TripID       string     `json:"tripId"`
	FileURL      string     `json:"fileUrl"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Caption      string     `json:"caption,omitempty"`
	TakenAt      *time.Time `json:"takenAt,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	ItineraryID  *string    `json:"itineraryId,omitempty"`
	ActivityID   *string    `json:"activityId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type PhotoCreate struct {
	FileURL      string     `json:"fileUrl" validate:"required,url"`
	ThumbnailURL string     `json:"thumbnailUrl" validate:"omitempty,url"`
	Caption      string     `json:"caption" validate:"max=500"`
	TakenAt      *time.Time `json:"takenAt"`
	Latitude     *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ItineraryID  *string    `json:"itineraryId" validate:"omitempty,uuid"`
	ActivityID   *string    `json:"activityId" validate:"omitempty,uuid"`
}

type PhotoUpdate struct {
	ThumbnailURL *string    `json:"thumbnailUrl" validate:"omitempty,url"`
	Caption      *string    `json:"caption" validate:"omitempty,max=500"`
	TakenAt      *time.Time `json:"takenAt"`
	Latitude     *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ItineraryID  NullableID `json:"itineraryId"`
	ActivityID   NullableID `json:"activityId"`
}

type PhotoFilter struct {
	Search      string
	ItineraryID *string
}

// PhotoStats counts photos by association.
type PhotoStats struct {
	Total            int64 `json:"total"`
	WithItinerary    int64 `json:"withItinerary"`
	WithActivity     int64 `json:"withActivity"`
	Unassigned       int64 `json:"unassigned"`
	WithLocationData int64 `json:"withLocationData"`
}

type PhotoListResponse struct {
	Items      []*Photo   `json:"items"`
	Pagination PageInfo   `json:"pagination"`
	Statistics PhotoStats `json:"statistics"`
}
