package pgsql

import (
	"context"
	"errors"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/glsvc/ledger-backend/internal/models"
	"github.com/glsvc/ledger-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepository {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepository = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, slug, name, api_key_hash, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTenantRepository) findTenant(ctx context.Context, where string, arg any) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE ` + where + `;`

	var m models.Tenant
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.TenantID,
		&m.Slug,
		&m.Name,
		&m.APIKeyHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tenant", err)
	}

	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.findTenant(ctx, "tenant_id = $1", tenantID)
}

func (r *PgxTenantRepository) FindTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.findTenant(ctx, "slug = $1", slug)
}
