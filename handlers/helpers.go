// Package handlers holds the gin HTTP layer. Handlers bind and parse the
// request, resolve the authenticated user, delegate to the models layer, and
// attach any failure to the gin context for the error middleware.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/middleware"
	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// deleteResponse is the body returned by every delete endpoint.
type deleteResponse struct {
	Message string `json:"message"`
}

// resolveUser maps the verified token identity to a user record. On failure
// the error is already attached to the context.
func resolveUser(c *gin.Context, users *models.UserModel) (*types.User, bool) {
	userID := c.GetString(string(middleware.UserIDKey))
	email := c.GetString(string(middleware.UserEmailKey))

	user, appErr := users.Resolve(c.Request.Context(), userID, email)
	if appErr != nil {
		_ = c.Error(appErr)
		return nil, false
	}
	return user, true
}

// parsePageRequest reads page/limit query params. Missing params fall back to
// the defaults; anything that is not a positive integer is rejected rather
// than silently corrected.
func parsePageRequest(c *gin.Context, defaultLimit int) (types.PageRequest, *apperrors.AppError) {
	req := types.PageRequest{Page: 1, Limit: defaultLimit}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return req, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
				{Field: "page", Message: "must be a positive integer"},
			})
		}
		req.Page = page
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return req, apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			})
		}
		req.Limit = limit
	}
	return req, nil
}

// invalidFilterValue rejects an unknown categorical filter value.
func invalidFilterValue(field string) *apperrors.AppError {
	return apperrors.ValidationFailedFields("Validation failed", []apperrors.FieldError{
		{Field: field, Message: "is not a valid value"},
	})
}

// bindJSON binds the request body, attaching a validation error on failure.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request payload", err.Error()))
		return false
	}
	return true
}
