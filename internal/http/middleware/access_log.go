package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventon/internal/metrics"
	"eventon/internal/rbac"
)

// AccessLog writes one structured line per request. The org id is included
// whenever the org scope middleware resolved one, denied requests included.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
		}
		if v, ok := c.Get(rbac.OrgContextKey); ok {
			if oc, ok := v.(rbac.OrgContext); ok {
				fields = append(fields, zap.String("org_id", oc.OrganisationID), zap.String("org_role", string(oc.Role)))
			}
		}
		if a := rbac.ActorFrom(c.Request.Context()); a != nil {
			fields = append(fields, zap.String("user_id", a.UserID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Instrument records request count, latency and in-flight gauge. Paths are
// labelled by route template so ids don't explode cardinality.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.RequestStarted()
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestFinished(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns panics into a 500 and logs them.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("panic recovered", zap.Any("panic", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	})
}
