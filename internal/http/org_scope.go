package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventon/internal/metrics"
	"eventon/internal/rbac"
)

// OrgScope runs the guard for the matched route. The resolved OrgContext is
// attached to the request before the decision is enforced, so it is visible
// to logging on denied requests too.
func OrgScope(table *RouteTable, guard *rbac.Guard, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, _ := table.Lookup(c.Request.Method, c.FullPath())

		oc, err := guard.Authorize(rbac.GuardRequest{
			PathOrgID:   c.Param("orgId"),
			HeaderOrgID: c.GetHeader(rbac.HeaderOrgID),
			HeaderRole:  c.GetHeader(rbac.HeaderOrgRole),
			Actor:       rbac.ActorFrom(c.Request.Context()),
			Required:    req.Effective(),
		})

		if oc.OrganisationID != "" {
			c.Set(rbac.OrgContextKey, oc)
			c.Request = c.Request.WithContext(rbac.WithOrgContext(c.Request.Context(), oc))
		}

		if err != nil {
			var authErr *rbac.AuthorizationError
			if !errors.As(err, &authErr) {
				m.GuardDecision(false, "unknown")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": err.Error()})
				return
			}
			m.GuardDecision(false, authErr.Code())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": authErr.Message()})
			return
		}

		m.GuardDecision(true, "")
		c.Next()
	}
}
