package models

import (
	"context"
	"time"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/internal/validation"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// expiringSoonWindow is the lookahead for the document statistics block.
const expiringSoonWindow = 30 * 24 * time.Hour

// DocumentModel owns travel document references.
type DocumentModel struct {
	trips     store.TripStore
	documents store.DocumentStore
}

func NewDocumentModel(trips store.TripStore, documents store.DocumentStore) *DocumentModel {
	return &DocumentModel{trips: trips, documents: documents}
}

func (m *DocumentModel) checkName(ctx context.Context, tripID, name, excludeID string) *apperrors.AppError {
	exists, err := m.documents.ExistsName(ctx, tripID, name, excludeID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if exists {
		return apperrors.BusinessRuleConflict("Duplicate document name", "a document with this name already exists")
	}
	return nil
}

// Expiry, when set, must be strictly in the future at write time.
func checkExpiry(expiry *time.Time) *apperrors.AppError {
	if expiry != nil && !expiry.After(time.Now()) {
		return apperrors.BusinessRuleConflict("Invalid expiry date", "expiry date must be in the future")
	}
	return nil
}

func (m *DocumentModel) CreateDocument(ctx context.Context, tripID, userID string, input *types.DocumentCreate) (*types.Document, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(input); appErr != nil {
		return nil, appErr
	}
	if appErr := checkExpiry(input.ExpiryDate); appErr != nil {
		return nil, appErr
	}
	if appErr := m.checkName(ctx, tripID, input.Name, ""); appErr != nil {
		return nil, appErr
	}

	created, err := m.documents.CreateDocument(ctx, &types.Document{
		TripID:     tripID,
		Name:       input.Name,
		Type:       input.Type,
		FileURL:    input.FileURL,
		FileType:   input.FileType,
		FileSize:   input.FileSize,
		ExpiryDate: input.ExpiryDate,
		Notes:      input.Notes,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

func (m *DocumentModel) GetDocument(ctx context.Context, tripID, id, userID string) (*types.Document, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	d, err := m.documents.GetDocument(ctx, tripID, id)
	if err != nil {
		return nil, mapStoreError(err, "Document", id)
	}
	return d, nil
}

func (m *DocumentModel) ListDocuments(ctx context.Context, tripID, userID string, filter types.DocumentFilter, page types.PageRequest) (*types.DocumentListResponse, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}

	items, total, err := m.documents.ListDocuments(ctx, tripID, filter, page)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if items == nil {
		items = []*types.Document{}
	}

	stats, err := m.documents.GetDocumentStats(ctx, tripID, expiringSoonWindow)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.DocumentListResponse{
		Items:      items,
		Pagination: types.NewPageInfo(page, total),
		Statistics: *stats,
	}, nil
}

func (m *DocumentModel) UpdateDocument(ctx context.Context, tripID, id, userID string, update *types.DocumentUpdate) (*types.Document, *apperrors.AppError) {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.Struct(update); appErr != nil {
		return nil, appErr
	}
	if appErr := checkExpiry(update.ExpiryDate); appErr != nil {
		return nil, appErr
	}
	if update.Name != nil {
		if appErr := m.checkName(ctx, tripID, *update.Name, id); appErr != nil {
			return nil, appErr
		}
	}

	updated, err := m.documents.UpdateDocument(ctx, tripID, id, update)
	if err != nil {
		return nil, mapStoreError(err, "Document", id)
	}
	return updated, nil
}

func (m *DocumentModel) DeleteDocument(ctx context.Context, tripID, id, userID string) *apperrors.AppError {
	if _, appErr := guardTrip(ctx, m.trips, tripID, userID); appErr != nil {
		return appErr
	}
	if err := m.documents.DeleteDocument(ctx, tripID, id); err != nil {
		return mapStoreError(err, "Document", id)
	}
	return nil
}
