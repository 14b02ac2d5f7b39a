package handlers

import (
	"fmt"

	"github.com/SscSPs/wallet_api/cmd/docs"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/SscSPs/wallet_api/internal/platform/config"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// db may be nil, in which case /health skips the database check.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
	db Pinger,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	authLimiter, err := middleware.NewIPRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("failed to create auth rate limiter: %w", err)
	}

	if !cfg.EnableDBCheck {
		db = nil
	}
	r.GET("/health", healthCheck(db))

	api := r.Group("/api")
	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret, services.Token)

	registerUserRoutes(api.Group("/users"), services, middleware.RateLimit(authLimiter), requireAuth)
	transactions := api.Group("/transactions", requireAuth)
	registerTransactionRoutes(transactions, services.Transaction, analytics)
	registerSummaryRoutes(transactions, services.Summary)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerUserRoutes wires registration and login behind the rate limiter and
// the remaining user routes behind authentication.
func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, rateLimit, requireAuth gin.HandlerFunc) {
	authHandler := NewAuthHandler(services.User, services.Token)
	userHandler := newUserHandler(services.User)

	rg.POST("/register", rateLimit, authHandler.Register)
	rg.POST("/login", rateLimit, authHandler.Login)
	rg.POST("/logout", requireAuth, authHandler.Logout)
	rg.GET("/current", requireAuth, userHandler.getCurrentUser)
	rg.GET("/profile", requireAuth, userHandler.getCurrentUser)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	wallet := r.Group("/wallet")
	wallet.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
