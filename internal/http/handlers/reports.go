package handlers

import (
	"net/http"

	"picusrc-backend/internal/http/middleware"
	"picusrc-backend/internal/repositories"
	"picusrc-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportService(c *gin.Context) services.ReportService {
	return services.ReportService{
		Trips:     repositories.TripRepository{},
		Legs:      repositories.LegRepository{},
		Params:    repositories.ParamsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/reports/concluded.pdf?from=...&to=...
func ConcludedReportPDF(c *gin.Context) {
	data, filename, err := reportService(c).ConcludedPDF(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/reports/concluded.csv?from=...&to=...
func ConcludedReportCSV(c *gin.Context) {
	data, filename, err := reportService(c).ConcludedCSV(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
