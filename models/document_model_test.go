package models

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

func TestCreateDocumentRules(t *testing.T) {
	documents := &documentStoreMock{
		existsName: func(_ context.Context, _, name, _ string) (bool, error) {
			return strings.EqualFold(name, "Passport"), nil
		},
		createDocument: func(_ context.Context, d *types.Document) (*types.Document, error) {
			d.ID = "doc-1"
			return d, nil
		},
	}
	m := NewDocumentModel(ownedTripStore(testTrip()), documents)

	t.Run("past expiry is rejected", func(t *testing.T) {
		expired := time.Now().AddDate(0, 0, -1)
		_, appErr := m.CreateDocument(context.Background(), "trip-1", "user-1", &types.DocumentCreate{
			Name:       "Old visa",
			Type:       types.DocumentTypeVisa,
			FileURL:    "https://files.example.com/visa.pdf",
			ExpiryDate: &expired,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
		assert.Equal(t, "Invalid expiry date", appErr.Message)
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		_, appErr := m.CreateDocument(context.Background(), "trip-1", "user-1", &types.DocumentCreate{
			Name:    "passport",
			Type:    types.DocumentTypePassport,
			FileURL: "https://files.example.com/passport.pdf",
		})
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
		assert.Equal(t, "Duplicate document name", appErr.Message)
	})

	t.Run("future expiry is accepted", func(t *testing.T) {
		expiry := time.Now().AddDate(1, 0, 0)
		d, appErr := m.CreateDocument(context.Background(), "trip-1", "user-1", &types.DocumentCreate{
			Name:       "Travel insurance",
			Type:       types.DocumentTypeInsurance,
			FileURL:    "https://files.example.com/insurance.pdf",
			ExpiryDate: &expiry,
		})
		require.Nil(t, appErr)
		assert.Equal(t, "doc-1", d.ID)
	})

	t.Run("no expiry is fine", func(t *testing.T) {
		_, appErr := m.CreateDocument(context.Background(), "trip-1", "user-1", &types.DocumentCreate{
			Name:    "Hotel reservation",
			Type:    types.DocumentTypeReservation,
			FileURL: "https://files.example.com/hotel.pdf",
		})
		assert.Nil(t, appErr)
	})
}
