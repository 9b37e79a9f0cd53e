package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// TenantAuthMiddleware creates a Gin middleware handler that authenticates
// the calling tenant. Two credentials are accepted: a bearer token issued by
// the auth endpoint, or a direct X-API-Key header paired with X-Tenant-Slug.
func TenantAuthMiddleware(tenantSvc portssvc.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tenantID, err := resolveTenant(c, tenantSvc)
		if err != nil {
			logger.Warn("Tenant authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), tenantIDKey, tenantID)
		enrichedLogger := logger.With(slog.String("tenant_id", tenantID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func resolveTenant(c *gin.Context, tenantSvc portssvc.TenantService) (string, error) {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		slug := c.GetHeader("X-Tenant-Slug")
		tenant, err := tenantSvc.VerifyAPIKey(c.Request.Context(), slug, apiKey)
		if err != nil {
			return "", err
		}
		return tenant.TenantID, nil
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errMissingCredentials
	}
	return tenantSvc.VerifyToken(c.Request.Context(), parts[1])
}

var errMissingCredentials = &credentialsError{}

type credentialsError struct{}

func (*credentialsError) Error() string {
	return "missing or malformed credentials"
}
