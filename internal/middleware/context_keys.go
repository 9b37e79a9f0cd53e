package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// tenantIDKey is the key used to store the authenticated tenant's ID in the
// request context.
const tenantIDKey = contextKey("tenantID")

// GetTenantIDFromContext retrieves the authenticated tenant ID from the
// request context. It returns the tenant ID and a boolean indicating whether
// authentication ran.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantID, ok := c.Request.Context().Value(tenantIDKey).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

// GetTenantIDFromCtx is the standard-context variant for code below the
// handler layer.
func GetTenantIDFromCtx(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}
