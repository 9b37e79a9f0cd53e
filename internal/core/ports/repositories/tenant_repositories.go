package repositories

import (
	"context"

	"github.com/glsvc/ledger-backend/internal/core/domain"
)

// TenantRepository reads the tenant registry. Provisioning is administrative
// and out of scope, so there is no write side.
type TenantRepository interface {
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	FindTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}
