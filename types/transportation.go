package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransportationType string

const (
	TransportationTypeFlight TransportationType = "FLIGHT"
	TransportationTypeTrain  TransportationType = "TRAIN"
	TransportationTypeBus    TransportationType = "BUS"
	TransportationTypeCar    TransportationType = "CAR"
	TransportationTypeFerry  TransportationType = "FERRY"
	TransportationTypeOther  TransportationType = "OTHER"
)

func (t TransportationType) IsValid() bool {
	switch t {
	case TransportationTypeFlight, TransportationTypeTrain, TransportationTypeBus,
		TransportationTypeCar, TransportationTypeFerry, TransportationTypeOther:
		return true
	default:
		return false
	}
}

// Transportation is a booked leg between two places. Arrival must be after
// departure and both must fall within the trip bounds.
type Transportation struct {
	ID                string             `json:"id"`
	TripID            string             `json:"tripId"`
	Type              TransportationType `json:"type"`
	Company           string             `json:"company,omitempty"`
	DepartureLocation string             `json:"departureLocation"`
	ArrivalLocation   string             `json:"arrivalLocation"`
	DepartureTime     time.Time          `json:"departureTime"`
	ArrivalTime       time.Time          `json:"arrivalTime"`
	ConfirmationCode  string             `json:"confirmationCode,omitempty"`
	Price             decimal.Decimal    `json:"price"`
	Currency          string             `json:"currency"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type TransportationCreate struct {
	Type              TransportationType `json:"type" validate:"required,oneof=FLIGHT TRAIN BUS CAR FERRY OTHER"`
	Company           string             `json:"company" validate:"max=200"`
	DepartureLocation string             `json:"departureLocation" validate:"required,max=300"`
	ArrivalLocation   string             `json:"arrivalLocation" validate:"required,max=300"`
	DepartureTime     time.Time          `json:"departureTime" validate:"required"`
	ArrivalTime       time.Time          `json:"arrivalTime" validate:"required"`
	ConfirmationCode  string             `json:"confirmationCode" validate:"max=100"`
	Price             decimal.Decimal    `json:"price"`
	Currency          string             `json:"currency" validate:"omitempty,len=3"`
	Notes             string             `json:"notes" validate:"max=2000"`
}

type TransportationUpdate struct {
	Type              *TransportationType `json:"type" validate:"omitempty,oneof=FLIGHT TRAIN BUS CAR FERRY OTHER"`
	Company           *string             `json:"company" validate:"omitempty,max=200"`
	DepartureLocation *string             `json:"departureLocation" validate:"omitempty,max=300"`
	ArrivalLocation   *string             `json:"arrivalLocation" validate:"omitempty,max=300"`
	DepartureTime     *time.Time          `json:"departureTime"`
	ArrivalTime       *time.Time          `json:"arrivalTime"`
	ConfirmationCode  *string             `json:"confirmationCode" validate:"omitempty,max=100"`
	Price             *decimal.Decimal    `json:"price"`
	Currency          *string             `json:"currency" validate:"omitempty,len=3"`
	Notes             *string             `json:"notes" validate:"omitempty,max=2000"`
}

type TransportationFilter struct {
	Search string
	Type   *TransportationType
}

type TransportationListResponse struct {
	Items      []*Transportation `json:"items"`
	Pagination PageInfo          `json:"pagination"`
}
