package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
)

// pathIDEntities maps id path parameters to the entity named in the 404.
var pathIDEntities = map[string]string{
	"id":                  "Trip",
	"itineraryId":         "Itinerary",
	"itineraryActivityId": "Itinerary activity",
	"activityId":          "Activity",
	"transportationId":    "Transportation",
	"accommodationId":     "Accommodation",
	"budgetId":            "Budget",
	"expenseId":           "Expense",
	"documentId":          "Document",
	"photoId":             "Photo",
	"noteId":              "Note",
}

// ValidatePathIDs rejects malformed resource ids before they reach a store.
// Every id column is a uuid, so a value that does not parse can never match
// a row; answering 404 up front keeps it from surfacing as a database error.
func ValidatePathIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			entity, ok := pathIDEntities[p.Key]
			if !ok {
				continue
			}
			if err := uuid.Validate(p.Value); err != nil {
				_ = c.Error(apperrors.NotFound(entity, p.Value))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
