package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/news_management_app/cmd/docs"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/middleware"
	"github.com/SscSPs/news_management_app/internal/platform/config"
	"github.com/SscSPs/news_management_app/internal/utils"
)

const defaultRateLimit = "5-M"

// RouteOption customises RegisterRoutes.
type RouteOption func(*routeOptions)

type routeOptions struct {
	images  http.FileSystem
	posthog *utils.PosthogClientWrapper
}

// WithImageFiles serves stored images under cfg.ImageBaseURL.
func WithImageFiles(fs http.FileSystem) RouteOption {
	return func(o *routeOptions) { o.images = fs }
}

// WithPosthog tracks authenticated API calls.
func WithPosthog(client *utils.PosthogClientWrapper) RouteOption {
	return func(o *routeOptions) { o.posthog = client }
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts ...RouteOption,
) {
	var o routeOptions
	for _, opt := range opts {
		opt(&o)
	}
	registerValidators()

	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if o.images != nil && cfg.ImageBaseURL != "" {
		r.StaticFS(cfg.ImageBaseURL, o.images)
	}

	setupAPIV1Routes(r, cfg, services, o)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AddAllowHeaders("Authorization")
	corsCfg.AddExposeHeaders("X-Request-ID", "Content-Disposition")
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// newRateLimiter builds an in-memory per-IP limiter from a formatted rate such as "5-M".
func newRateLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		slog.Warn("Invalid rate limit, using default", slog.String("rate", formatted), slog.String("default", defaultRateLimit))
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
	}
	return limiter.New(memory.NewStore(), rate)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Reads accept anonymous callers as Guests, mutations require a bearer token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	o routeOptions,
) {
	v1 := r.Group("/api/v1")
	registerHomeRoutes(v1)

	loginLimiter := newRateLimiter(cfg.RateLimit)
	registerAuthRoutes(v1, cfg, services, middleware.RateLimit(loginLimiter))

	public := v1.Group("", middleware.OptionalAuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(o.posthog))
	private := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(o.posthog))

	registerArticleRoutes(public, private, services.Article)
	registerCategoryRoutes(public, private, services.Category)
	registerTagRoutes(public, private, services.Tag)

	registerAccountRoutes(private, services.Account)
	registerReportingRoutes(private, services.Reporting)
	registerImageRoutes(private, services.Image)

	assistantLimiter := limitergin.NewMiddleware(newRateLimiter(cfg.AssistantRateLimit))
	registerAssistantRoutes(private, services.Assistant, assistantLimiter)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
