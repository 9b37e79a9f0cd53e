package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/glsvc/ledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles HTTP requests related to tenant authentication.
type authHandler struct {
	tenantService portssvc.TenantService
}

func newAuthHandler(ts portssvc.TenantService) *authHandler {
	return &authHandler{tenantService: ts}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, tenantService portssvc.TenantService) {
	h := newAuthHandler(tenantService)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/token", h.issueToken)
	}
}

// issueToken godoc
// @Summary Exchange an API key for a bearer token
// @Description Verifies a tenant slug and API key, returning a signed bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.TokenRequest true "Tenant credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Failed to issue token"
// @Router /auth/token [post]
func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for token request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.tenantService.Authenticate(c.Request.Context(), req.TenantSlug, req.APIKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Invalid tenant credentials", slog.String("tenant_slug", req.TenantSlug))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			logger.Error("Failed to issue token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
