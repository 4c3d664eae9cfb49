package handlers

import (
	"net/http"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/http/middleware"
	"picusrc-backend/internal/repositories"
	"picusrc-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/params
func GetParams(c *gin.Context) {
	params, err := repositories.ParamsRepository{}.Load()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

// PUT /api/params
func UpdateParams(c *gin.Context) {
	var params domain.OperatingParams
	if !BindJSONOrError(c, &params) {
		return
	}
	if params.Rates == nil {
		params.Rates = map[string]float64{}
	}
	params.Rates[domain.BaseCurrency] = 1.0
	if err := params.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := (repositories.ParamsRepository{}).Save(params); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "params", "update", "operating parameters replaced")
	c.JSON(http.StatusOK, params)
}
