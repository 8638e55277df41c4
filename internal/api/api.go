package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/costbook/backend/config"
	"github.com/costbook/backend/internal/database"
	"github.com/costbook/backend/internal/service"
)

// HealthCheck reports service and database health.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// RegisterRoutes wires every handler under /api/v1. cache may be nil
// when Redis is unavailable; reports then recompute on every request.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	router.GET("/health", HealthCheck(db))
	router.GET("/api/health", HealthCheck(db))

	recipeService := service.NewRecipeService(db)
	reportService := service.NewReportService(db, cache, cfg.ReportMarkup)

	ingredientHandler := NewIngredientHandler(service.NewIngredientService(db), reportService)
	vendorHandler := NewVendorHandler(service.NewVendorService(db), reportService)
	packingHandler := NewPackingHandler(service.NewPackingService(db), reportService)
	recipeHandler := NewRecipeHandler(recipeService, reportService)
	calculationHandler := NewCalculationHandler(service.NewCalculationService(db, recipeService))
	reportHandler := NewReportHandler(reportService)

	v1 := router.Group("/api/v1")
	v1.GET("/health", HealthCheck(db))
	ingredientHandler.RegisterRoutes(v1)
	vendorHandler.RegisterRoutes(v1)
	packingHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	calculationHandler.RegisterRoutes(v1)
	reportHandler.RegisterRoutes(v1)
}
