package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer-backend/logger"
)

// Pinger is satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health endpoints.
type HealthHandler struct {
	db      Pinger
	redis   *redis.Client
	version string
}

func NewHealthHandler(db Pinger, redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, version: version}
}

type healthStatus struct {
	Status     string            `json:"status"`
	Version    string            `json:"version,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

// Liveness reports that the process is up. It must not touch dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthStatus{Status: "up"})
}

// Readiness checks the database and redis with a short deadline.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	components := map[string]string{}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		logger.GetLogger().Warnw("Database health check failed", "error", err)
		components["database"] = "down"
		healthy = false
	} else {
		components["database"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			logger.GetLogger().Warnw("Redis health check failed", "error", err)
			components["redis"] = "down"
			healthy = false
		} else {
			components["redis"] = "up"
		}
	}

	status := healthStatus{Status: "ready", Version: h.version, Components: components}
	if !healthy {
		status.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Health is the combined endpoint used by uptime checks.
func (h *HealthHandler) Health(c *gin.Context) {
	h.Readiness(c)
}
