package repositories

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SchemaProbe answers the cheap existence/population checks the resolver
// bases its strategy decision on. Probes run on every request; none of the
// answers may be cached.
type SchemaProbe interface {
	// JournalTablesExist reports whether the normalized journal and entry
	// tables are present.
	JournalTablesExist(ctx context.Context) (bool, error)

	// AccountsTableExists reports whether the chart-of-accounts table is
	// present.
	AccountsTableExists(ctx context.Context) (bool, error)

	// LegacyTableExists reports whether the legacy flat ledger table is
	// present.
	LegacyTableExists(ctx context.Context) (bool, error)

	// HasJournalData reports whether the tenant has at least one normalized
	// journal row.
	HasJournalData(ctx context.Context, tenantID string) (bool, error)

	// HasLegacyData reports whether the tenant has at least one legacy row.
	HasLegacyData(ctx context.Context, tenantID string) (bool, error)
}

// LedgerReader reads ledger facts under one storage generation. The resolver
// picks the implementation per request; readers for different generations
// must agree on the result shapes so reports are schema-agnostic.
type LedgerReader interface {
	// Schema identifies the storage generation this reader serves.
	Schema() domain.LedgerSchema

	// ListLedgerAccounts returns the accounts the ledger can be read for,
	// ordered by code. Under legacy-synthesized storage these are built from
	// distinct codes found in the rows.
	ListLedgerAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error)

	// OpeningBalance is the signed net (debit - credit) of all movements for
	// the account dated strictly before the given date.
	OpeningBalance(ctx context.Context, tenantID string, ref domain.AccountRef, before time.Time) (decimal.Decimal, error)

	// AccountEntries returns the account's movements within [from, to]
	// inclusive, ordered by (date, journal, line) ascending. Running balances
	// are not populated here; the ledger service replays them.
	AccountEntries(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) ([]domain.LedgerLine, error)

	// BalanceActivity is the aggregation primitive behind every report:
	// per account, the signed net before from and the unsigned debit/credit
	// sums within [from, to].
	BalanceActivity(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error)

	// DailyMovements returns raw per-day debit/credit sums for revenue and
	// expense accounts within [from, to]. Days without activity are absent;
	// the reporting service densifies the series.
	DailyMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error)
}

// LedgerReaderFactory maps a resolved schema strategy to its reader.
type LedgerReaderFactory interface {
	ReaderFor(schema domain.LedgerSchema) LedgerReader
}
