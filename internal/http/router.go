package api

import (
	"log"
	stdhttp "net/http"

	intconfig "picusrc-backend/internal/config"
	h "picusrc-backend/internal/http/handlers"
	"picusrc-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	secret := []byte(env.JWTSecret)
	h.SetJWTSecret(secret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Operating parameters
		params := api.Group("/params")
		params.GET("", h.GetParams)
		params.PUT("", middleware.RequireAuth(secret), h.UpdateParams)

		// Leg catalog
		legs := api.Group("/legs")
		legs.GET("", h.ListLegs)
		legs.GET("/:pos", h.GetLeg)
		legs.POST("", middleware.RequireAuth(secret), h.CreateLeg)
		legs.PUT("/:pos", middleware.RequireAuth(secret), h.UpdateLeg)
		legs.DELETE("/:pos", middleware.RequireAuth(secret), h.DeleteLeg)

		// Round-trip composition
		roundtrips := api.Group("/roundtrips")
		roundtrips.POST("/compose", h.ComposeRoundTrip)

		// Trip lifecycle
		trips := api.Group("/trips")
		trips.GET("/pending", h.ListPendingTrips)
		trips.GET("/concluded", h.ListConcludedTrips)
		trips.POST("", middleware.RequireAuth(secret), h.RegisterTrip)
		trips.POST("/:id/close", middleware.RequireAuth(secret), h.CloseTrip)
		trips.PUT("/:id/incidentals", middleware.RequireAuth(secret), h.EditTripIncidentals)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/concluded.pdf", h.ConcludedReportPDF)
		reports.GET("/concluded.csv", h.ConcludedReportCSV)
	}

	return r
}
