package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccommodationType string

const (
	AccommodationTypeHotel     AccommodationType = "HOTEL"
	AccommodationTypeHostel    AccommodationType = "HOSTEL"
	AccommodationTypeApartment AccommodationType = "APARTMENT"
	AccommodationTypeHouse     AccommodationType = "HOUSE"
	AccommodationTypeCamping   AccommodationType = "CAMPING"
	AccommodationTypeOther     AccommodationType = "OTHER"
)

func (t AccommodationType) IsValid() bool {
	switch t {
	case AccommodationTypeHotel, AccommodationTypeHostel, AccommodationTypeApartment,
		AccommodationTypeHouse, AccommodationTypeCamping, AccommodationTypeOther:
		return true
	default:
		return false
	}
}

// Accommodation is a stay with a half-open [checkIn, checkOut) window. Stays
// of the same trip must not overlap; touching endpoints are allowed.
type Accommodation struct {
	ID               string            `json:"id"`
	TripID           string            `json:"tripId"`
	Name             string            `json:"name"`
	Type             AccommodationType `json:"type"`
	Address          string            `json:"address,omitempty"`
	Latitude         *float64          `json:"latitude,omitempty"`
	Longitude        *float64          `json:"longitude,omitempty"`
	CheckIn          time.Time         `json:"checkIn"`
	CheckOut         time.Time         `json:"checkOut"`
	PricePerNight    decimal.Decimal   `json:"pricePerNight"`
	TotalPrice       decimal.Decimal   `json:"totalPrice"`
	Currency         string            `json:"currency"`
	BookingURL       string            `json:"bookingUrl,omitempty"`
	ConfirmationCode string            `json:"confirmationCode,omitempty"`
	Rating           *int              `json:"rating,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type AccommodationCreate struct {
	Name             string            `json:"name" validate:"required,max=200"`
	Type             AccommodationType `json:"type" validate:"required,oneof=HOTEL HOSTEL APARTMENT HOUSE CAMPING OTHER"`
	Address          string            `json:"address" validate:"max=300"`
	Latitude         *float64          `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64          `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	CheckIn          time.Time         `json:"checkIn" validate:"required"`
	CheckOut         time.Time         `json:"checkOut" validate:"required"`
	PricePerNight    decimal.Decimal   `json:"pricePerNight"`
	TotalPrice       decimal.Decimal   `json:"totalPrice"`
	Currency         string            `json:"currency" validate:"omitempty,len=3"`
	BookingURL       string            `json:"bookingUrl" validate:"omitempty,url"`
	ConfirmationCode string            `json:"confirmationCode" validate:"max=100"`
	Rating           *int              `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes            string            `json:"notes" validate:"max=2000"`
}

type AccommodationUpdate struct {
	Name             *string            `json:"name" validate:"omitempty,max=200"`
	Type             *AccommodationType `json:"type" validate:"omitempty,oneof=HOTEL HOSTEL APARTMENT HOUSE CAMPING OTHER"`
	Address          *string            `json:"address" validate:"omitempty,max=300"`
	Latitude         *float64           `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64           `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	CheckIn          *time.Time         `json:"checkIn"`
	CheckOut         *time.Time         `json:"checkOut"`
	PricePerNight    *decimal.Decimal   `json:"pricePerNight"`
	TotalPrice       *decimal.Decimal   `json:"totalPrice"`
	Currency         *string            `json:"currency" validate:"omitempty,len=3"`
	BookingURL       *string            `json:"bookingUrl" validate:"omitempty,url"`
	ConfirmationCode *string            `json:"confirmationCode" validate:"omitempty,max=100"`
	Rating           *int               `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes            *string            `json:"notes" validate:"omitempty,max=2000"`
}

type AccommodationFilter struct {
	Search string
	Type   *AccommodationType
}

type AccommodationListResponse struct {
	Items      []*Accommodation `json:"items"`
	Pagination PageInfo         `json:"pagination"`
}
