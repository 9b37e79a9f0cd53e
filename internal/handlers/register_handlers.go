package handlers

import (
	"net/http"

	"github.com/glsvc/ledger-backend/cmd/docs"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/middleware"
	"github.com/glsvc/ledger-backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication route
	registerAuthRoutes(r, services.Tenant)

	setupTenantRoutes(r, services)

	setupSwaggerRoutes(r, cfg)
}

// setupTenantRoutes configures the authenticated per-tenant API surface.
func setupTenantRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	tenant := r.Group("/api/v1/tenants/:tenant_id", middleware.TenantAuthMiddleware(services.Tenant))

	registerAccountRoutes(tenant, services.Account)
	registerJournalRoutes(tenant, services.Journal)
	registerLedgerRoutes(tenant, services.Ledger)
	registerReportingRoutes(tenant, services.Reporting)
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

// resolveTenantID checks the authenticated tenant against the path. A caller
// addressing another tenant's data gets a 404, not a 403, so tenant ids are
// not probeable.
func resolveTenantID(c *gin.Context) (string, bool) {
	authTenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	pathTenantID := c.Param("tenant_id")
	if pathTenantID != authTenantID {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return "", false
	}
	return authTenantID, true
}
