package services

import (
	"context"
	"log/slog"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
)

// schemaResolverService decides which ledger storage generation is usable for
// a tenant. Production data may be mid-migration, so the decision is taken
// fresh on every request; the probes are cheap existence checks and caching
// them risks serving a stale strategy right after a migration completes.
type schemaResolverService struct {
	BaseService
	probe portsrepo.SchemaProbe
}

func NewSchemaResolver(probe portsrepo.SchemaProbe) portssvc.SchemaResolver {
	return &schemaResolverService{probe: probe}
}

var _ portssvc.SchemaResolver = (*schemaResolverService)(nil)

// Resolve evaluates the generation predicates in precedence order:
// populated normalized journals with a chart, populated legacy rows with a
// chart, populated legacy rows without one, a bare chart, nothing.
func (s *schemaResolverService) Resolve(ctx context.Context, tenantID string) (domain.LedgerSchema, error) {
	accountsExist, err := s.probe.AccountsTableExists(ctx)
	if err != nil {
		return domain.SchemaNone, err
	}

	journalsExist, err := s.probe.JournalTablesExist(ctx)
	if err != nil {
		return domain.SchemaNone, err
	}
	if journalsExist && accountsExist {
		hasData, err := s.probe.HasJournalData(ctx, tenantID)
		if err != nil {
			return domain.SchemaNone, err
		}
		if hasData {
			return domain.SchemaNormalized, nil
		}
	}

	legacyExists, err := s.probe.LegacyTableExists(ctx)
	if err != nil {
		return domain.SchemaNone, err
	}
	if legacyExists {
		hasData, err := s.probe.HasLegacyData(ctx, tenantID)
		if err != nil {
			return domain.SchemaNone, err
		}
		if hasData {
			if accountsExist {
				return domain.SchemaLegacyAccounts, nil
			}
			return domain.SchemaLegacySynthesized, nil
		}
	}

	if accountsExist {
		return domain.SchemaAccountsOnly, nil
	}

	s.LogDebug(ctx, "No usable ledger source for tenant", slog.String("tenant_id", tenantID))
	return domain.SchemaNone, nil
}
