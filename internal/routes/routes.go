package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/handlers"
	"github.com/BruksfildServices01/service-on-wheel/internal/infra/cache"
	"github.com/BruksfildServices01/service-on-wheel/internal/metrics"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
)

// Deps are the process-wide singletons. Audit and Cache may be nil.
type Deps struct {
	Config  *config.Config
	Gateway *db.Gateway
	Tokens  *auth.Issuer
	Audit   *audit.Dispatcher
	Cache   *cache.Catalog
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		metrics.Middleware(),
		middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Audit, deps.Tokens)
	catalogHandler := handlers.NewCatalogHandler(deps.Cache)
	testimonialHandler := handlers.NewTestimonialHandler()
	bookingHandler := handlers.NewBookingHandler(deps.Audit)
	meHandler := handlers.NewMeHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler()

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.DBScope(deps.Gateway))
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/testimonials", testimonialHandler.List)

		api.GET("/services", catalogHandler.List)
		api.GET("/services/:id", catalogHandler.Get)
		api.GET("/search", catalogHandler.Search)

		api.POST("/bookings", bookingHandler.Create)

		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(deps.Tokens))
		{
			secured.GET("", meHandler.GetMe)
			secured.GET("/bookings", meHandler.ListBookings)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
