package models

import (
	"context"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// NoteModel owns free-form trip notes.
type NoteModel struct {
	trips store.TripStore
	notes store.NoteStore
}

func NewNoteModel(trips store.TripStore, notes store.NoteStore) *NoteModel {
	return &NoteModel{trips: trips, notes: notes}
}

func (m *NoteModel) CreateNote(ctx context.Context, tripID, userID string, input *types.TripNoteCreate) (*types.TripNote, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}

	noteType := input.Type
	if noteType == "" {
		noteType = types.NoteTypeGeneral
	}

	created, err := m.notes.CreateNote(ctx, &types.TripNote{
		TripID:  tripID,
		Title:   input.Title,
		Content: input.Content,
		Type:    noteType,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *NoteModel) GetNote(ctx context.Context, tripID, id, userID string) (*types.TripNote, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	n, err := m.notes.GetNote(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Note", id)
	}
	return n, nil
}

func (m *NoteModel) ListNotes(ctx context.Context, tripID, userID string, filter types.TripNoteFilter, page types.PageRequest) (*types.TripNoteListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	items, total, err := m.notes.ListNotes(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.TripNote{}
	}
	return &types.TripNoteListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
	}, nil
}

func (m *NoteModel) UpdateNote(ctx context.Context, tripID, id, userID string, update *types.TripNoteUpdate) (*types.TripNote, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}

	updated, err := m.notes.UpdateNote(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Note", id)
	}
	return updated, nil
}

func (m *NoteModel) DeleteNote(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.notes.DeleteNote(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Note", id)
	}
	return nil
}
