package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chef/backend/config"
	"github.com/chef/backend/internal/infrastructure/metrics"
)

// SetupRouter creates and configures the Gin router. A nil metrics disables /metrics and request instrumentation.
func SetupRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(UserIdentityMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		v1.GET("/categories", handler.ListCategories)

		ingredients := v1.Group("/ingredients")
		{
			ingredients.POST("/classify", handler.ClassifyIngredients)
			ingredients.POST("/parse", handler.ParseIngredients)
		}

		pantry := v1.Group("/pantry")
		{
			pantry.POST("/match", handler.MatchPantry)
			pantry.POST("/search", RequireUser(), handler.SearchPantry)
		}

		shopping := v1.Group("/shopping-list", RequireUser())
		{
			shopping.GET("", handler.ListShoppingItems)
			shopping.GET("/grouped", handler.GroupedShoppingItems)
			shopping.POST("", handler.AddShoppingItem)
			shopping.POST("/batch", handler.AddShoppingItems)
			shopping.POST("/toggle", handler.ToggleShoppingItems)
			shopping.POST("/:id/toggle", handler.ToggleShoppingItem)
			shopping.POST("/remove", handler.RemoveShoppingItems)
			shopping.POST("/recategorize", handler.RecategorizeShoppingList)
			shopping.DELETE("/checked", handler.ClearCheckedItems)
			shopping.DELETE("/:id", handler.RemoveShoppingItem)
			shopping.DELETE("", handler.ClearShoppingList)
		}

		meals := v1.Group("/meal-plans", RequireUser())
		{
			meals.GET("", handler.ListMealPlans)
			meals.POST("", handler.AddMealPlan)
			meals.POST("/auto-fill", handler.AutoFillMealPlans)
			meals.PATCH("/:id", handler.MoveMealPlan)
			meals.DELETE("/:id", handler.RemoveMealPlan)
		}
	}

	return router
}
