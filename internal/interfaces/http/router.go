package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	issueUC "tracker/internal/application/issue/usecases"
	reportUC "tracker/internal/application/report/usecases"
	userUC "tracker/internal/application/user/usecases"
	"tracker/internal/infrastructure/config"
	"tracker/internal/infrastructure/repository"
	issuehandlers "tracker/internal/interfaces/http/handlers/issue"
	reporthandlers "tracker/internal/interfaces/http/handlers/report"
	userhandlers "tracker/internal/interfaces/http/handlers/user"
	"tracker/internal/interfaces/http/middleware"
	"tracker/internal/interfaces/http/routes"
	"tracker/internal/shared/db"
	"tracker/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers onto a gin engine.
type Router struct {
	engine        *gin.Engine
	cfg           *config.Config
	issueHandler  *issuehandlers.IssueHandler
	reportHandler *reporthandlers.ReportHandler
	userHandler   *userhandlers.UserHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	txManager := db.NewTransactionManager(database)

	issueRepo := repository.NewIssueRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	labelRepo := repository.NewLabelRepository(database)
	userRepo := repository.NewUserRepository(database)

	issueHandler := issuehandlers.NewIssueHandler(
		issueUC.NewCreateIssueUseCase(issueRepo, userRepo, txManager, log),
		issueUC.NewGetIssueUseCase(issueRepo, log),
		issueUC.NewListIssuesUseCase(issueRepo, log),
		issueUC.NewUpdateIssueUseCase(issueRepo, userRepo, txManager, log),
		issueUC.NewDeleteIssueUseCase(issueRepo, txManager, log),
		issueUC.NewAddCommentUseCase(issueRepo, commentRepo, userRepo, txManager, log),
		issueUC.NewReplaceLabelsUseCase(issueRepo, labelRepo, txManager, log),
		issueUC.NewBulkUpdateStatusUseCase(issueRepo, txManager, log),
		issueUC.NewImportIssuesUseCase(issueRepo, userRepo, txManager, log),
		issueUC.NewGetTimelineUseCase(issueRepo, txManager, log),
	)

	reportHandler := reporthandlers.NewReportHandler(
		reportUC.NewTopAssigneesUseCase(issueRepo, userRepo, log),
		reportUC.NewResolutionLatencyUseCase(issueRepo, userRepo, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userUC.NewCreateUserUseCase(userRepo, txManager, log),
		userUC.NewGetUserUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, txManager, log),
	)

	return &Router{
		engine:        engine,
		cfg:           cfg,
		issueHandler:  issueHandler,
		reportHandler: reportHandler,
		userHandler:   userHandler,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupIssueRoutes(r.engine, &routes.IssueRouteConfig{IssueHandler: r.issueHandler})
	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{ReportHandler: r.reportHandler})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{UserHandler: r.userHandler})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
