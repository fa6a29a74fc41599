package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventon/internal/matching"
	"eventon/internal/rbac"
)

// RankCandidates scores the posted candidates for a job in the caller's
// organisation.
func RankCandidates(svc *matching.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			JobID           string   `json:"jobId" binding:"required"`
			StaffProfileIDs []string `json:"staffProfileIds" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		oc, ok := orgContext(c)
		if !ok {
			return
		}

		resp := svc.Rank(c.Request.Context(), oc.OrganisationID, matching.RankRequest{
			JobID:           input.JobID,
			StaffProfileIDs: input.StaffProfileIDs,
		})
		c.JSON(http.StatusOK, resp)
	}
}

// SubmitFeedback records a 0-5 rating for a staff member on a shift. The
// response is always accepted; persistence failures stay server-side.
func SubmitFeedback(svc *matching.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ShiftID        string   `json:"shiftId" binding:"required"`
			StaffProfileID string   `json:"staffProfileId" binding:"required"`
			Score          *float64 `json:"score" binding:"required,gte=0,lte=5"`
			Comments       *string  `json:"comments"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		oc, ok := orgContext(c)
		if !ok {
			return
		}

		resp := svc.SubmitFeedback(c.Request.Context(), oc.OrganisationID, matching.FeedbackRequest{
			ShiftID:        input.ShiftID,
			StaffProfileID: input.StaffProfileID,
			Score:          *input.Score,
			Comments:       input.Comments,
		})
		c.JSON(http.StatusOK, resp)
	}
}

// ListFeedback returns the organisation's recorded feedback, optionally
// filtered by ?shiftId=.
func ListFeedback(svc *matching.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		oc, ok := orgContext(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.ListFeedback(c.Request.Context(), oc.OrganisationID, c.Query("shiftId")))
	}
}

// orgContext reads the scope attached by the org scope middleware. Its
// absence means the route was mounted without the guard.
func orgContext(c *gin.Context) (rbac.OrgContext, bool) {
	oc, ok := rbac.OrgContextFrom(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": rbac.ErrScopeRequired.Error()})
	}
	return oc, ok
}
