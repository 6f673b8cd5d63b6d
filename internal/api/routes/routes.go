package routes

import (
	"cx-crm-backend/internal/api/handlers"
	"cx-crm-backend/internal/api/middleware"
	"cx-crm-backend/internal/auth"
	"cx-crm-backend/internal/config"
	"cx-crm-backend/internal/repository"
	"cx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	stageRepo := repository.NewStageRepository(db)
	pipelineRepo := repository.NewPipelineRepository(db)
	transitionRepo := repository.NewTransitionRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	stageService := service.NewStageService(stageRepo, validator)
	pipelineService := service.NewPipelineService(pipelineRepo, clientRepo, userRepo, stageRepo, transitionRepo, activityRepo, validator)
	activityService := service.NewActivityService(activityRepo, pipelineRepo)
	statsService := service.NewStatsService(stageRepo, transitionRepo)
	migrationService := service.NewMigrationService(pipelineRepo, stageRepo)

	// Initialize auth middleware resolving the acting user for mutations
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	stageHandler := handlers.NewStageHandler(stageService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	activityHandler := handlers.NewActivityHandler(activityService)
	statsHandler := handlers.NewStatsHandler(statsService)
	migrationHandler := handlers.NewMigrationHandler(migrationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Reads are public
		v1.GET("/pipeline-stages", stageHandler.ListStages)
		v1.GET("/pipeline-stages/:id", stageHandler.GetStage)
		v1.GET("/pipelines", pipelineHandler.ListPipelines)
		v1.GET("/pipelines/:id", pipelineHandler.GetPipeline)
		v1.GET("/pipelines/:id/activities", pipelineHandler.ListActivities)
		v1.GET("/pipelines/:id/transitions", pipelineHandler.ListTransitions)
		v1.GET("/stage-duration-stats", statsHandler.StageDurationStats)

		// Mutations require an acting user
		protected := v1.Group("")
		protected.Use(authMiddleware.RequireActingUser())
		{
			protected.POST("/pipeline-stages", stageHandler.CreateStage)
			protected.PATCH("/pipeline-stages/:id", stageHandler.UpdateStage)
			protected.DELETE("/pipeline-stages/:id", stageHandler.DeleteStage)
			protected.POST("/pipelines", pipelineHandler.CreatePipeline)
			protected.PATCH("/pipelines/:id", pipelineHandler.UpdatePipeline)
			protected.DELETE("/pipelines/:id", pipelineHandler.DeletePipeline)
			protected.POST("/pipelines/:id/activities", activityHandler.RecordActivity)
			protected.POST("/migrate-pipeline-stages", migrationHandler.MigratePipelineStages)
		}
	}

	return router
}
