package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

type noteStoreMock struct {
	createNote func(ctx context.Context, n *types.TripNote) (*types.TripNote, error)
	getNote    func(ctx context.Context, tripID, id string) (*types.TripNote, error)
	listNotes  func(ctx context.Context, tripID string, filter types.TripNoteFilter, page types.PageRequest) ([]*types.TripNote, int64, error)
	updateNote func(ctx context.Context, tripID, id string, update *types.TripNoteUpdate) (*types.TripNote, error)
	deleteNote func(ctx context.Context, tripID, id string) error
}

func (m *noteStoreMock) CreateNote(ctx context.Context, n *types.TripNote) (*types.TripNote, error) {
	return m.createNote(ctx, n)
}
func (m *noteStoreMock) GetNote(ctx context.Context, tripID, id string) (*types.TripNote, error) {
	return m.getNote(ctx, tripID, id)
}
func (m *noteStoreMock) ListNotes(ctx context.Context, tripID string, filter types.TripNoteFilter, page types.PageRequest) ([]*types.TripNote, int64, error) {
	return m.listNotes(ctx, tripID, filter, page)
}
func (m *noteStoreMock) UpdateNote(ctx context.Context, tripID, id string, update *types.TripNoteUpdate) (*types.TripNote, error) {
	return m.updateNote(ctx, tripID, id, update)
}
func (m *noteStoreMock) DeleteNote(ctx context.Context, tripID, id string) error {
	return m.deleteNote(ctx, tripID, id)
}

func TestCreateNote(t *testing.T) {
	notes := &noteStoreMock{
		createNote: func(_ context.Context, n *types.TripNote) (*types.TripNote, error) {
			n.ID = "note-1"
			return n, nil
		},
	}
	m := NewNoteModel(ownedTripStore(testTrip()), notes)

	t.Run("type defaults to general", func(t *testing.T) {
		n, appErr := m.CreateNote(context.Background(), "trip-1", "user-1", &types.TripNoteCreate{
			Content: "Remember to book the Sintra train early.",
		})
		require.Nil(t, appErr)
		assert.Equal(t, types.NoteTypeGeneral, n.Type)
	})

	t.Run("explicit type is kept", func(t *testing.T) {
		n, appErr := m.CreateNote(context.Background(), "trip-1", "user-1", &types.TripNoteCreate{
			Content: "Passport copies in the shared folder.",
			Type:    types.NoteTypeImportant,
		})
		require.Nil(t, appErr)
		assert.Equal(t, types.NoteTypeImportant, n.Type)
	})

	t.Run("empty content yields a field error", func(t *testing.T) {
		_, appErr := m.CreateNote(context.Background(), "trip-1", "user-1", &types.TripNoteCreate{})
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "content", appErr.Fields[0].Field)
	})
}
