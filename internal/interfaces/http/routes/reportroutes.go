package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "tracker/internal/interfaces/http/handlers/report"
)

type ReportRouteConfig struct {
	ReportHandler *reporthandlers.ReportHandler
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	{
		reports.GET("/top-assignees", config.ReportHandler.TopAssignees)
		reports.GET("/resolution-latency", config.ReportHandler.ResolutionLatency)
	}
}
