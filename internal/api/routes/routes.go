package routes

import (
	"log"

	"guard-console-backend/internal/api/handlers"
	"guard-console-backend/internal/api/middleware"
	"guard-console-backend/internal/auth"
	"guard-console-backend/internal/config"
	"guard-console-backend/internal/registry"
	"guard-console-backend/internal/repository"
	"guard-console-backend/internal/service"

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
	agencyRepo := repository.NewAgencyRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	checkpointRepo := repository.NewCheckpointRepository(db)
	guardRepo := repository.NewGuardRepository(db)

	// Initialize services
	agencyService := service.NewAgencyService(agencyRepo, validator)
	branchService := service.NewBranchService(branchRepo, agencyRepo, validator)
	checkpointService := service.NewCheckpointService(checkpointRepo, branchRepo, validator)
	guardService := service.NewGuardService(guardRepo, branchRepo, validator)
	registryClient := registry.NewClient(cfg)
	shiftRegistryService := service.NewShiftRegistryService(registryClient)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	agencyHandler := handlers.NewAgencyHandler(agencyService)
	branchHandler := handlers.NewBranchHandler(branchService, checkpointService)
	checkpointHandler := handlers.NewCheckpointHandler(checkpointService)
	guardHandler := handlers.NewGuardHandler(guardService)
	shiftRegistryHandler := handlers.NewShiftRegistryHandler(shiftRegistryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Agency routes
		agencies := v1.Group("/agencies")
		{
			agencies.GET("", agencyHandler.ListAgencies)
			agencies.POST("", agencyHandler.CreateAgency)
			agencies.GET("/:id", agencyHandler.GetAgency)
			agencies.PUT("/:id", agencyHandler.UpdateAgency)
			agencies.DELETE("/:id", agencyHandler.DeleteAgency)
			agencies.GET("/:id/branches", branchHandler.ListAgencyBranches)
		}

		// Branch routes
		branches := v1.Group("/branches")
		{
			branches.GET("", branchHandler.ListBranches) // Optional q and agency_id parameters
			branches.POST("", branchHandler.CreateBranch)
			branches.GET("/:id", branchHandler.GetBranch)
			branches.PUT("/:id", branchHandler.UpdateBranch)
			branches.DELETE("/:id", branchHandler.DeleteBranch)
			branches.GET("/:id/checkpoints", branchHandler.ListBranchCheckpoints)
		}

		// Checkpoint routes
		checkpoints := v1.Group("/checkpoints")
		{
			checkpoints.POST("", checkpointHandler.CreateCheckpoint)
			checkpoints.GET("/:id", checkpointHandler.GetCheckpoint)
			checkpoints.PUT("/:id", checkpointHandler.UpdateCheckpoint)
			checkpoints.DELETE("/:id", checkpointHandler.DeleteCheckpoint)
		}

		// Guard routes
		guards := v1.Group("/guards")
		{
			guards.GET("", guardHandler.ListGuards) // Optional branch_id and active parameters
			guards.POST("", guardHandler.CreateGuard)
			guards.GET("/:id", guardHandler.GetGuard)
			guards.PUT("/:id", guardHandler.UpdateGuard)
			guards.DELETE("/:id", guardHandler.DeleteGuard)
		}

		// Shift registry routes
		shiftRegistry := v1.Group("/shift-registry")
		{
			shiftRegistry.GET("", shiftRegistryHandler.GetShiftRegistry) // Requires scope parameter
			shiftRegistry.GET("/week-dates", shiftRegistryHandler.GetWeekDates)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
