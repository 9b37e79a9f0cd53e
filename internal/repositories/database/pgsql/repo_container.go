package pgsql

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerReaderFactory holds one reader per storage generation and hands
// out the one matching the resolved strategy.
type PgxLedgerReaderFactory struct {
	readers map[domain.LedgerSchema]portsrepo.LedgerReader
}

func newPgxLedgerReaderFactory(pool *pgxpool.Pool) portsrepo.LedgerReaderFactory {
	return &PgxLedgerReaderFactory{
		readers: map[domain.LedgerSchema]portsrepo.LedgerReader{
			domain.SchemaNormalized:        newPgxNormalizedLedgerReader(pool),
			domain.SchemaLegacyAccounts:    newPgxLegacyLedgerReader(pool, true),
			domain.SchemaLegacySynthesized: newPgxLegacyLedgerReader(pool, false),
			domain.SchemaAccountsOnly:      newPgxAccountsOnlyLedgerReader(pool),
		},
	}
}

func (f *PgxLedgerReaderFactory) ReaderFor(schema domain.LedgerSchema) portsrepo.LedgerReader {
	if reader, ok := f.readers[schema]; ok {
		return reader
	}
	return EmptyLedgerReader{}
}

// NewRepositoryProvider wires every pgx-backed repository over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(pool),
		JournalRepo:   newPgxJournalRepository(pool),
		TenantRepo:    newPgxTenantRepository(pool),
		SchemaProbe:   newPgxSchemaProbe(pool),
		LedgerReaders: newPgxLedgerReaderFactory(pool),
	}
}
