package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"eventon/internal/auth"
	"eventon/internal/http/handlers"
	"eventon/internal/http/middleware"
	"eventon/internal/matching"
	"eventon/internal/metrics"
	"eventon/internal/rbac"
)

type Deps struct {
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Matching    *matching.Service
	Health      handlers.Pinger
	JWTSecret   string
	RateLimit   *middleware.RateLimiter
	CORSOrigins []string
}

// matchingRoles may rank candidates and submit feedback.
var matchingRoles = []rbac.Role{rbac.Manager, rbac.Admin, rbac.Owner}

// feedbackReaders may read feedback back; viewers get read-only access.
var feedbackReaders = rbac.Roles(rbac.Viewer, rbac.Manager, rbac.Admin, rbac.Owner)

// NewRouter builds the engine and returns the route table alongside it so
// callers can inspect the declared requirements.
func NewRouter(d Deps) (*gin.Engine, *RouteTable) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Request bodies with fields the handlers do not declare are rejected.
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	// Recovery sits inside the logging and metrics middleware so a panic
	// still completes their bookkeeping as a 500.
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Instrument(d.Metrics),
		middleware.Recovery(log),
		middleware.SecureHeaders(),
		middleware.CORS(d.CORSOrigins),
		middleware.RateLimit(d.RateLimit),
	)

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	health := handlers.Health(d.Health)
	r.GET("/health", health)
	r.GET("/healthz", health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	table := NewRouteTable()
	guard := rbac.NewGuard(log)

	api := r.Group("/api/v1", auth.Actor(d.JWTSecret))
	scoped := api.Group("", OrgScope(table, guard, d.Metrics))

	orgs := table.Group(scoped, "/orgs/:orgId")
	orgs.GET("/context", handlers.OrgContext())

	orgMatching := table.Group(scoped, "/orgs/:orgId/matching", matchingRoles...)
	orgMatching.POST("/rank", handlers.RankCandidates(d.Matching))
	orgMatching.POST("/feedback", handlers.SubmitFeedback(d.Matching))
	orgMatching.Handle(http.MethodGet, "/feedback", feedbackReaders, handlers.ListFeedback(d.Matching))

	// Header-scoped variants resolve the organisation from X-Org-Id.
	headerMatching := table.Group(scoped, "/matching", matchingRoles...)
	headerMatching.POST("/rank", handlers.RankCandidates(d.Matching))
	headerMatching.POST("/feedback", handlers.SubmitFeedback(d.Matching))

	return r, table
}
