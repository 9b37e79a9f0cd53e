package services

import (
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Schema = NewSchemaResolver(repos.SchemaProbe)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Ledger = NewLedgerService(container.Schema, repos.LedgerReaders)
	container.Reporting = NewReportingService(container.Schema, repos.LedgerReaders)
	container.Tenant = NewTenantService(repos.TenantRepo, cfg)

	return container
}
