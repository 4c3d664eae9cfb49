package handlers

import (
	"net/http"

	"picusrc-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/trips
func RegisterTrip(c *gin.Context) {
	var in services.RegisterOutboundInput
	if !BindJSONOrError(c, &in) {
		return
	}
	leg, err := tripService(c).RegisterOutbound(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"itineraryId": leg.ItineraryID,
		"leg":         leg,
	})
}

type closeTripRequest struct {
	LegPositions []int `json:"legPositions"`
}

// POST /api/trips/:id/close
func CloseTrip(c *gin.Context) {
	var req closeTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	legs, err := tripService(c).Close(c.Param("id"), req.LegPositions)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"itineraryId": c.Param("id"),
		"legs":        legs,
	})
}

// PUT /api/trips/:id/incidentals
func EditTripIncidentals(c *gin.Context) {
	var in services.EditOutboundInput
	if !BindJSONOrError(c, &in) {
		return
	}
	leg, err := tripService(c).EditOutbound(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leg": leg})
}

// GET /api/trips/pending
func ListPendingTrips(c *gin.Context) {
	legs, err := tripService(c).ListPending()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": legs, "count": len(legs)})
}

// GET /api/trips/concluded?from=2024-01-01&to=2024-01-31
func ListConcludedTrips(c *gin.Context) {
	summaries, err := tripService(c).ListConcluded(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": summaries, "count": len(summaries)})
}
