package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client, mock := redismock.NewClientMock()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(UserIDKey), "user-1")
	})
	r.Use(RateLimiter(client, 2, time.Minute))
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w
	}

	// The expiry is set once, when the first hit opens the window. Later
	// hits only increment; a refresh on every hit would slide the window.
	mock.ExpectIncr("ratelimit:user-1").SetVal(1)
	mock.ExpectExpire("ratelimit:user-1", time.Minute).SetVal(true)
	assert.Equal(t, http.StatusOK, do().Code)

	mock.ExpectIncr("ratelimit:user-1").SetVal(2)
	assert.Equal(t, http.StatusOK, do().Code)

	mock.ExpectIncr("ratelimit:user-1").SetVal(3)
	mock.ExpectTTL("ratelimit:user-1").SetVal(30 * time.Second)
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")

	require.NoError(t, mock.ExpectationsWereMet())
}
