package services

// ServiceContainer bundles all service implementations for handler
// registration.
type ServiceContainer struct {
	Account   AccountService
	Journal   JournalService
	Ledger    LedgerService
	Reporting ReportingService
	Schema    SchemaResolver
	Tenant    TenantService
}
