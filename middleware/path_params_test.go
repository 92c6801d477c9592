package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestValidatePathIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(ValidatePathIDs())
	r.GET("/trips/:id/budgets/:budgetId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tripID := "3f2c6f0a-95d1-4a8e-b7c4-1d2e3f4a5b6c"
	budgetID := "3f2c6f0a-95d1-4a8e-b7c4-1d2e3f4a5b6d"

	do := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("malformed trip id is a plain 404", func(t *testing.T) {
		w := do("/trips/abc/budgets/" + budgetID)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Trip not found")
	})

	t.Run("malformed nested id names its entity", func(t *testing.T) {
		w := do("/trips/" + tripID + "/budgets/not-a-uuid")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Budget not found")
	})

	t.Run("well-formed ids pass through", func(t *testing.T) {
		w := do("/trips/" + tripID + "/budgets/" + budgetID)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
