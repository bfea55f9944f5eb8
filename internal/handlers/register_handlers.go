package handlers

import (
	"net/http"

	"github.com/SscSPs/construct_erp/cmd/docs"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/SscSPs/construct_erp/internal/platform/config"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps carries the optional collaborators of the router.
type RouteDeps struct {
	Posthog *utils.PosthogClientWrapper
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	dto.RegisterValidators()

	r.GET("/health", getHealth)
	r.GET("/api/v1/health", getHealth)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Every area is gated by its navigation view.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, services.Session),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	registerSessionRoutes(v1, services.Session)

	v1.GET("/dashboard", middleware.RequireView(domain.ViewDashboard), getDashboard)
	registerClientRoutes(v1.Group("", middleware.RequireView(domain.ViewClients)))
	registerProjectRoutes(v1.Group("", middleware.RequireView(domain.ViewProjects)))
	registerTransactionRoutes(v1.Group("", middleware.RequireView(domain.ViewFinance)))
	registerInventoryRoutes(v1.Group("", middleware.RequireView(domain.ViewInventory)), deps.Posthog)
	registerApprovalRoutes(v1.Group("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleFinance)), deps.Posthog)
	registerDailyLogRoutes(v1.Group("", middleware.RequireView(domain.ViewLogs)), services.Photos)
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
