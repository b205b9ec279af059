package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// HealthHandler returns 200 when check passes and 503 otherwise.
func HealthHandler(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
