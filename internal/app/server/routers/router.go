package routers

import (
	"github.com/gin-gonic/gin"

	"pem/internal/app/server/handlers/alert"
	"pem/internal/app/server/handlers/product"
	"pem/internal/app/server/handlers/recipe"
	"pem/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	productHandler *product.ProductHandler,
	alertHandler *alert.AlertHandler,
	recipeHandler *recipe.RecipeHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger())
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "pem",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/expiring", productHandler.Expiring)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("/history", alertHandler.History)
			alerts.GET("/stats", alertHandler.Stats)
			alerts.POST("/check", alertHandler.Check)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.GET("/:productName", recipeHandler.Suggest)
		}
	}

	return r
}
