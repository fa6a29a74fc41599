package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrgContext echoes the organisation scope and role the guard resolved.
func OrgContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		oc, ok := orgContext(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, oc)
	}
}
