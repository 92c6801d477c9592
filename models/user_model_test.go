package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

type userStoreMock struct {
	getUserByID    func(ctx context.Context, id string) (*types.User, error)
	getUserByEmail func(ctx context.Context, email string) (*types.User, error)
}

func (m *userStoreMock) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	return m.getUserByID(ctx, id)
}
func (m *userStoreMock) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return m.getUserByEmail(ctx, email)
}

func TestResolveUser(t *testing.T) {
	known := &types.User{ID: "user-1", Email: "traveler@example.com"}
	m := NewUserModel(&userStoreMock{
		getUserByID: func(_ context.Context, id string) (*types.User, error) {
			if id == known.ID {
				return known, nil
			}
			return nil, errNotFound
		},
		getUserByEmail: func(_ context.Context, email string) (*types.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, errNotFound
		},
	})

	t.Run("subject id wins", func(t *testing.T) {
		user, appErr := m.Resolve(context.Background(), "user-1", "")
		require.Nil(t, appErr)
		assert.Equal(t, known, user)
	})

	t.Run("unknown id falls back to email", func(t *testing.T) {
		user, appErr := m.Resolve(context.Background(), "external-subject", "traveler@example.com")
		require.Nil(t, appErr)
		assert.Equal(t, known, user)
	})

	t.Run("no match is an auth failure", func(t *testing.T) {
		_, appErr := m.Resolve(context.Background(), "external-subject", "nobody@example.com")
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.AuthError, appErr.Type)
	})
}
