// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coffee_backend/internal/api"
)

// Health handles the /healthz liveness endpoint.
// It responds according to the HTTP method and disables caching.
func Health(c *gin.Context) {
	// Explicitly prevent caching
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, api.StatusResponse{Status: "ok"})
	}
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Ready returns the /readyz handler, which reports 503 while the database is unreachable.
func Ready(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.StatusResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, api.StatusResponse{Status: "ready"})
	}
}

// Root handles GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to the Klara Coffee API"})
}

// OpenAPI serves the embedded OpenAPI document.
func OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", api.OpenAPISpec)
}
