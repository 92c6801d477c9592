package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer-backend/logger"
)

// RateLimiter creates a fixed-window per-user rate limiter backed by Redis.
// Redis failures do not block requests; availability wins over strictness.
func RateLimiter(redisClient *redis.Client, requestsPerWindow int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(UserIDKey))
		if userID == "" {
			userID = c.ClientIP()
		}

		key := fmt.Sprintf("ratelimit:%s", userID)

		count, err := redisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		// The window opens on the first hit only. Refreshing the expiry on
		// every increment would slide the window and could lock a steady
		// client out indefinitely.
		if count == 1 {
			if err := redisClient.Expire(c.Request.Context(), key, window).Err(); err != nil {
				logger.GetLogger().Warnw("Rate limit window start failed", "error", err)
			}
		}

		if count > int64(requestsPerWindow) {
			ttl, err := redisClient.TTL(c.Request.Context(), key).Result()
			if err != nil || ttl < 0 {
				ttl = window
			}
			c.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"type":    "RATE_LIMIT_EXCEEDED",
				"message": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
