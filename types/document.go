package types

import "time"

type DocumentType string

const (
	DocumentTypePassport    DocumentType = "PASSPORT"
	DocumentTypeVisa        DocumentType = "VISA"
	DocumentTypeTicket      DocumentType = "TICKET"
	DocumentTypeReservation DocumentType = "RESERVATION"
	DocumentTypeInsurance   DocumentType = "INSURANCE"
	DocumentTypeVaccine     DocumentType = "VACCINE"
	DocumentTypeOther       DocumentType = "OTHER"
)

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePassport, DocumentTypeVisa, DocumentTypeTicket, DocumentTypeReservation,
		DocumentTypeInsurance, DocumentTypeVaccine, DocumentTypeOther:
		return true
	default:
		return false
	}
}

// Document is a stored travel document reference. Names are unique per trip;
// the file itself lives elsewhere, only its URL is kept.
type Document struct {
	ID         string       `json:"id"`
	TripID     string       `json:"tripId"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	FileURL    string       `json:"fileUrl"`
	FileType   string       `json:"fileType,omitempty"`
	FileSize   *int64       `json:"fileSize,omitempty"`
	ExpiryDate *time.Time   `json:"expiryDate,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

type DocumentCreate struct {
	Name       string       `json:"name" validate:"required,max=200"`
	Type       DocumentType `json:"type" validate:"required,oneof=PASSPORT VISA TICKET RESERVATION INSURANCE VACCINE OTHER"`
	FileURL    string       `json:"fileUrl" validate:"required,url"`
	FileType   string       `json:"fileType" validate:"max=100"`
	FileSize   *int64       `json:"fileSize" validate:"omitempty,gt=0"`
	ExpiryDate *time.Time   `json:"expiryDate"`
	Notes      string       `json:"notes" validate:"max=2000"`
}

type DocumentUpdate struct {
	Name       *string       `json:"name" validate:"omitempty,max=200"`
	Type       *DocumentType `json:"type" validate:"omitempty,oneof=PASSPORT VISA TICKET RESERVATION INSURANCE VACCINE OTHER"`
	FileURL    *string       `json:"fileUrl" validate:"omitempty,url"`
	FileType   *string       `json:"fileType" validate:"omitempty,max=100"`
	FileSize   *int64        `json:"fileSize" validate:"omitempty,gt=0"`
	ExpiryDate *time.Time    `json:"expiryDate"`
	Notes      *string       `json:"notes" validate:"omitempty,max=2000"`
}

type DocumentFilter struct {
	Search string
	Type   *DocumentType
}

// DocumentStats counts documents by type and lists the ones expiring within
// the next 30 days.
type DocumentStats struct {
	Total        int64            `json:"total"`
	ByType       map[string]int64 `json:"byType"`
	ExpiringSoon []*Document      `json:"expiringSoon"`
}

type DocumentListResponse struct {
	Items      []*Document   `json:"items"`
	Pagination PageInfo      `json:"pagination"`
	Statistics DocumentStats `json:"statistics"`
}
