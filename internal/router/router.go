package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/middleware"
	"github.com/pageza/recipe-finder/backend/internal/observability"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, logger zerolog.Logger, recipes service.RecipeProvider) *gin.Engine {
	router := gin.New()

	// Logging and metrics sit outside recovery so they observe the 500.
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		observability.Metrics(),
		middleware.ErrorHandler(cfg.ExposeErrors()),
		middleware.CORS(cfg.AllowedOrigins()),
	)

	router.GET("/", api.APIInfo)
	router.GET("/health", api.HealthCheck(cfg.Environment))
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	api.NewRecipeHandler(recipes).RegisterRoutes(router)

	router.NoRoute(middleware.NotFound())

	return router
}
