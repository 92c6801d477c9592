package types

import "time"

type NoteType string

const (
	NoteTypeGeneral   NoteType = "GENERAL"
	NoteTypeReminder  NoteType = "REMINDER"
	NoteTypeImportant NoteType = "IMPORTANT"
	NoteTypeIdea      NoteType = "IDEA"
)

func (t NoteType) IsValid() bool {
	switch t {
	case NoteTypeGeneral, NoteTypeReminder, NoteTypeImportant, NoteTypeIdea:
		return true
	default:
		return false
	}
}

// TripNote is a free-form note attached to a trip.
type TripNote struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TripNoteCreate struct {
	Title   string   `json:"title" validate:"max=200"`
	Content string   `json:"content" validate:"required,max=10000"`
	Type    NoteType `json:"type" validate:"omitempty,oneof=GENERAL REMINDER IMPORTANT IDEA"`
}

type TripNoteUpdate struct {
	Title   *string   `json:"title" validate:"omitempty,max=200"`
	Content *string   `json:"content" validate:"omitempty,max=10000"`
	Type    *NoteType `json:"type" validate:"omitempty,oneof=GENERAL REMINDER IMPORTANT IDEA"`
}

type TripNoteFilter struct {
	Search string
	Type   *NoteType
}

type TripNoteListResponse struct {
	Items      []*TripNote `json:"items"`
	Pagination PageInfo    `json:"pagination"`
}
