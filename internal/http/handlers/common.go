package handlers

import (
	"net/http"

	"picusrc-backend/internal/http/middleware"
	"picusrc-backend/internal/repositories"
	"picusrc-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Legs:      repositories.LegRepository{},
		Params:    repositories.ParamsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func composerService(c *gin.Context) services.ComposerService {
	return services.ComposerService{
		Legs:      repositories.LegRepository{},
		Params:    repositories.ParamsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Trips:     repositories.TripRepository{},
		Legs:      repositories.LegRepository{},
		Params:    repositories.ParamsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}
