package routes

import (
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
	authService usecase.AuthUseCase,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	api.GET("/health", healthHandler.Check)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/profile", middleware.Auth(authService, logger), authHandler.Profile)
	}

	transactionRoutes := api.Group("/transactions")
	transactionRoutes.Use(middleware.Auth(authService, logger))
	{
		// Fixed paths are registered before the :id parameter routes
		transactionRoutes.GET("/statistics", transactionHandler.Statistics)
		transactionRoutes.POST("/add-money", transactionHandler.AddMoney)

		transactionRoutes.GET("", transactionHandler.List)
		transactionRoutes.POST("", transactionHandler.Create)
		transactionRoutes.PUT("/:id", transactionHandler.Update)
		transactionRoutes.DELETE("/:id", transactionHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
