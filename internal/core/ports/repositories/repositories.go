package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	TenantRepo    TenantRepository
	SchemaProbe   SchemaProbe
	LedgerReaders LedgerReaderFactory
}
