package services

import (
	"context"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/glsvc/ledger-backend/internal/dto"
)

// TenantService is the tenant-resolution seam the core consumes. The core
// never resolves tenants itself beyond this.
type TenantService interface {
	// Authenticate exchanges a slug + API key for a signed bearer token.
	Authenticate(ctx context.Context, slug, apiKey string) (*dto.TokenResponse, error)

	// VerifyAPIKey resolves a tenant directly from slug + API key.
	VerifyAPIKey(ctx context.Context, slug, apiKey string) (*domain.Tenant, error)

	// VerifyToken validates a bearer token and returns the tenant id claim.
	VerifyToken(ctx context.Context, token string) (string, error)

	// Resolve fetches a tenant by id.
	Resolve(ctx context.Context, tenantID string) (*domain.Tenant, error)
}
