package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "tracker/internal/interfaces/http/handlers/issue"
)

type IssueRouteConfig struct {
	IssueHandler *issuehandlers.IssueHandler
}

func SetupIssueRoutes(engine *gin.Engine, config *IssueRouteConfig) {
	issues := engine.Group("/issues")
	{
		// Collection operations (no ID parameter)
		issues.POST("", config.IssueHandler.CreateIssue)
		issues.GET("", config.IssueHandler.ListIssues)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		issues.POST("/bulk/status", config.IssueHandler.BulkUpdateStatus)
		issues.POST("/import", config.IssueHandler.ImportIssues)
		issues.POST("/:id/comments", config.IssueHandler.AddComment)
		issues.PUT("/:id/labels", config.IssueHandler.ReplaceLabels)
		issues.GET("/:id/timeline", config.IssueHandler.GetTimeline)

		// Generic parameterized routes (must come LAST)
		issues.GET("/:id", config.IssueHandler.GetIssue)
		issues.PATCH("/:id", config.IssueHandler.UpdateIssue)
		issues.DELETE("/:id", config.IssueHandler.DeleteIssue)
	}
}
