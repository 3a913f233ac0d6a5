package routes

import (
	"net/http"
	"time"

	"smartresume/handlers"
	"smartresume/metrics"
	"smartresume/middleware"
	"smartresume/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configures the global middleware chain.
type Options struct {
	Logger          *zap.Logger
	TrustedProxies  []string // peers whose forwarded IP headers count; nil trusts none
	RateLimitStore  middleware.WindowStore
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// NewRouter builds the engine with global middleware and every route mounted.
func NewRouter(hb *handlers.HandlerBundle, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(utils.ErrorHandler(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.GinMiddleware())
	// Preflight requests are answered here and never reach the limiter.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{
			middleware.RequestIDHeader,
			"Retry-After",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 12 * time.Hour,
	}))
	if opts.RateLimitStore != nil && opts.RateLimitMax > 0 {
		r.Use(middleware.RateLimitMiddleware(opts.RateLimitStore, opts.RateLimitMax, opts.RateLimitWindow, logger))
	}

	RegisterRoutes(r, hb)
	return r
}

// RegisterHealthRoutes registers the root banner and health endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	api := r.Group("/api/health")
	{
		api.GET("", hb.HealthHandler)
		api.GET("/deps", hb.DependencyHealthHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/generate", hb.GenerateHandler)
}

// RegisterResumeRoutes registers resume persistence endpoints.
func RegisterResumeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resumes")
	{
		api.POST("", hb.SaveResumeHandler)
		api.GET("", hb.ListResumesHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterResumeRoutes(r, hb)
	r.GET("/metrics", metrics.Handler())
}
