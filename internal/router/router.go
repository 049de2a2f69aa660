package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"markguard/internal/handler"
	"markguard/internal/middleware"
	"markguard/internal/service"
)

// Handlers bundles the handler set wired into the engine.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Brand       *handler.BrandHandler
	Case        *handler.CaseHandler
	Payment     *handler.PaymentHandler
	Interaction *handler.InteractionHandler
	Template    *handler.TemplateHandler
	Evidence    *handler.EvidenceHandler
	Metrics     *handler.MetricsHandler
	Health      *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	// Dashboard metrics
	metrics := protected.Group("/metrics")
	metrics.GET("/dashboard", h.Metrics.GetDashboard)
	metrics.GET("/dashboard/:type", h.Metrics.GetDashboardByType)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireAdmin(), h.User.Create)
	users.GET("", middleware.RequireAdmin(), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", middleware.RequireAdmin(), h.User.Update)
	users.DELETE("/:id", middleware.RequireAdmin(), h.User.Delete)

	// Brand catalog
	brands := protected.Group("/brands")
	brands.POST("", middleware.RequireInternal(), h.Brand.Create)
	brands.GET("", h.Brand.List)
	brands.GET("/:id", h.Brand.GetByID)
	brands.PUT("/:id", middleware.RequireInternal(), h.Brand.Update)
	brands.DELETE("/:id", middleware.RequireAdmin(), h.Brand.Delete)

	// Case management
	cases := protected.Group("/cases")
	cases.POST("", middleware.RequireInternal(), h.Case.Create)
	cases.GET("", h.Case.List)
	cases.GET("/export/csv", h.Case.ExportCSV)
	cases.GET("/:id", h.Case.GetByID)
	cases.PUT("/:id", middleware.RequireInternal(), h.Case.Update)
	cases.PATCH("/:id/status", middleware.RequireInternal(), h.Case.ChangeStatus)
	cases.DELETE("/:id", middleware.RequireAdmin(), h.Case.Delete)
	cases.GET("/:id/payments", h.Payment.ListByCase)
	cases.GET("/:id/interactions", h.Interaction.ListByCase)
	cases.POST("/:id/evidence", middleware.RequireInternal(), h.Evidence.Upload)
	cases.GET("/:id/evidence", h.Evidence.ListByCase)

	// Payments
	payments := protected.Group("/payments")
	payments.POST("", middleware.RequireInternal(), h.Payment.Create)
	payments.GET("/:id", h.Payment.GetByID)
	payments.PATCH("/:id/status", middleware.RequireInternal(), h.Payment.UpdateStatus)
	payments.DELETE("/:id", middleware.RequireAdmin(), h.Payment.Delete)

	// Interaction log
	interactions := protected.Group("/interactions")
	interactions.POST("", middleware.RequireInternal(), h.Interaction.Create)
	interactions.DELETE("/:id", middleware.RequireAdmin(), h.Interaction.Delete)

	// Notification templates
	templates := protected.Group("/templates")
	templates.POST("", middleware.RequireInternal(), h.Template.Create)
	templates.GET("", h.Template.List)
	templates.GET("/:id", h.Template.GetByID)
	templates.PUT("/:id", middleware.RequireInternal(), h.Template.Update)
	templates.DELETE("/:id", middleware.RequireAdmin(), h.Template.Delete)

	// Evidence files
	evidence := protected.Group("/evidence")
	evidence.GET("/:id/download", h.Evidence.GetDownloadURL)
	evidence.DELETE("/:id", middleware.RequireInternal(), h.Evidence.Delete)

	return r
}
