package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shepherdsuite/church_mgmt_app/cmd/docs"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to per-entity
// route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	// Public routes: auth endpoints get a per-IP rate limit, the payment
	// webhook authenticates via its shared secret.
	public := v1.Group("", middleware.RateLimit(newAuthLimiter()))
	registerAuthRoutes(public, cfg, services.Account, services.Token)
	registerPaymentWebhookRoute(v1, cfg, services.Subscription)

	// Everything else requires a valid access token.
	authed := v1.Group("", middleware.Authentication(cfg.JWTSecret, cfg.AuthCookieName, services.Account))
	registerAccountRoutes(authed, services.Account)
	registerSubscriptionRoutes(authed, cfg, services.Subscription)
	registerChurchRoutes(authed, services)
}

// newAuthLimiter builds the in-memory per-IP limiter for the auth endpoints.
func newAuthLimiter() *limiter.Limiter {
	rate := limiter.Rate{Period: time.Minute, Limit: 20}
	return limiter.New(memory.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
