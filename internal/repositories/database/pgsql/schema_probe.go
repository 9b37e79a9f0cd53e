package pgsql

import (
	"context"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSchemaProbe answers table-existence and per-tenant population checks.
// Results are never cached; a migration or a first posting must change the
// resolved strategy on the very next request.
type PgxSchemaProbe struct {
	BaseRepository
}

func newPgxSchemaProbe(pool *pgxpool.Pool) portsrepo.SchemaProbe {
	return &PgxSchemaProbe{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SchemaProbe = (*PgxSchemaProbe)(nil)

func (p *PgxSchemaProbe) tableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	query := `SELECT to_regclass($1) IS NOT NULL;`
	if err := p.Pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to probe table "+table, err)
	}
	return exists, nil
}

func (p *PgxSchemaProbe) JournalTablesExist(ctx context.Context) (bool, error) {
	journals, err := p.tableExists(ctx, "journals")
	if err != nil || !journals {
		return false, err
	}
	return p.tableExists(ctx, "journal_entries")
}

func (p *PgxSchemaProbe) AccountsTableExists(ctx context.Context) (bool, error) {
	return p.tableExists(ctx, "accounts")
}

func (p *PgxSchemaProbe) LegacyTableExists(ctx context.Context) (bool, error) {
	return p.tableExists(ctx, "ledger_rows")
}

func (p *PgxSchemaProbe) HasJournalData(ctx context.Context, tenantID string) (bool, error) {
	var has bool
	query := `SELECT EXISTS (SELECT 1 FROM journals WHERE tenant_id = $1);`
	if err := p.Pool.QueryRow(ctx, query, tenantID).Scan(&has); err != nil {
		return false, apperrors.NewAppError(500, "failed to probe journal data for tenant "+tenantID, err)
	}
	return has, nil
}

func (p *PgxSchemaProbe) HasLegacyData(ctx context.Context, tenantID string) (bool, error) {
	var has bool
	query := `SELECT EXISTS (SELECT 1 FROM ledger_rows WHERE tenant_id = $1);`
	if err := p.Pool.QueryRow(ctx, query, tenantID).Scan(&has); err != nil {
		return false, apperrors.NewAppError(500, "failed to probe legacy data for tenant "+tenantID, err)
	}
	return has, nil
}
