package httpserver

import (
	"context"
	"net/http"
	"time"

	"legal-office-management/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Legal Office Management API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "legal-office-management"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when Postgres (and Redis, if configured) answer a ping.
// @Summary Readiness Check
// @Description Check if the API and its backing stores are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{"postgres": "ok"}
	ready := true

	if err := srv.postgresDB.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "readyCheck: postgres: %v", err)
		checks["postgres"] = err.Error()
		ready = false
	}

	if srv.cache != nil {
		checks["redis"] = "ok"
		if err := srv.cache.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "readyCheck: redis: %v", err)
			checks["redis"] = err.Error()
			ready = false
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Not ready",
			Data:      gin.H{"status": "not_ready", "checks": checks},
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
