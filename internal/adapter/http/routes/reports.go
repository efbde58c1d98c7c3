package routes

import (
	"atelier_couture/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStats    = "/stats"
	PathStatuses = "/statuses"
	PathSizes    = "/sizes"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, statusHandler *handlers.StatusHandler) {
	stats := rg.Group(PathStats)
	{
		stats.GET("", reportHandler.GetMonthlyStats)
		stats.GET("/export", reportHandler.ExportMonthlyStats)
	}

	statuses := rg.Group(PathStatuses)
	{
		statuses.GET("", statusHandler.ListStatuses)
		statuses.GET("/form", statusHandler.ListFormStatuses)
	}

	rg.GET(PathSizes, statusHandler.ListSizes)
}
