package handlers

import (
	"github.com/SscSPs/product_transactions/cmd/docs"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/middleware"
	"github.com/SscSPs/product_transactions/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// seedLimiter may be nil, in which case the seed route is not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	seedLimiter *limiter.Limiter,
) {
	registerHomeRoutes(r)

	setupTransactionRoutes(r, cfg, services, seedLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupTransactionRoutes configures the /api/transactions group
func setupTransactionRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	seedLimiter *limiter.Limiter,
) {
	defaultMonth := domain.Month(cfg.DefaultMonth)
	transactions := r.Group("/api/transactions")

	registerTransactionRoutes(transactions, services.Transaction, defaultMonth)
	registerReportingRoutes(transactions, services.Reporting, defaultMonth)

	var seedMiddleware []gin.HandlerFunc
	if seedLimiter != nil {
		seedMiddleware = append(seedMiddleware, middleware.RateLimit(seedLimiter))
	}
	registerSeedRoutes(transactions, services.Seed, seedMiddleware...)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
