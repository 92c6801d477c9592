package models

import (
	"context"
	stderrors "errors"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/internal/store"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// UserModel resolves JWT claims to user records.
type UserModel struct {
	users store.UserStore
}

func NewUserModel(users store.UserStore) *UserModel {
	return &UserModel{users: users}
}

// Resolve maps the verified token identity to a user record. The subject
// claim is tried as a user id first; tokens that only carry an email claim
// fall back to an email lookup.
func (m *UserModel) Resolve(ctx context.Context, userID, email string) (*types.User, *apperrors.AppError) {
	if userID != "" {
		user, err := m.users.GetUserByID(ctx, userID)
		if err == nil {
			return user, nil
		}
		if !stderrors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	if email == "" {
		return nil, apperrors.AuthenticationFailed("Unable to resolve authenticated user")
	}

	user, err := m.users.GetUserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, apperrors.AuthenticationFailed("Unable to resolve authenticated user")
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}
