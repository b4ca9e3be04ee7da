package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessHandler answers 200 while the process can serve HTTP. It never
// touches Postgres or Kafka.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler runs every registered checker within timeout and answers
// 503 when any dependency is down, so webhooks are not routed to an instance
// that cannot confirm orders.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		response := registry.CheckAll(ctx)
		if response.Status != StatusDown {
			c.JSON(http.StatusOK, response)
			return
		}

		for _, check := range response.Checks {
			if check.Status == StatusDown {
				slog.WarnContext(ctx, "Readiness check failed",
					slog.String("checker", check.Name),
					slog.String("message", check.Message))
			}
		}
		c.JSON(http.StatusServiceUnavailable, response)
	}
}
