package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/costbook/backend/config"
	"github.com/costbook/backend/internal/api"
	"github.com/costbook/backend/internal/middleware"
)

// Setup builds the application router with middleware and all routes
// registered.
func Setup(db *gorm.DB, cache *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, db, cache, cfg)

	return router
}
