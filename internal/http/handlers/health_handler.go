package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthPingTimeout = 2 * time.Second

// Health always answers 200; a failing database only downgrades the status
// since every database-backed path in the API is best-effort.
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		up := db != nil && db.Ping(ctx) == nil
		status := "ok"
		if !up {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "database": up})
	}
}
