package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type composeRequest struct {
	LegPos int `json:"legPos"`
}

// POST /api/roundtrips/compose
//
// A missing return route is a normal outcome, reported as found=false
// rather than an error status.
func ComposeRoundTrip(c *gin.Context) {
	var req composeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, found, err := composerService(c).ComposeAt(req.LegPos)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "no return route available",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"trip":  trip,
	})
}
