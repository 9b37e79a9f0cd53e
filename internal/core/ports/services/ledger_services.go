package services

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
)

// SchemaResolver decides per request which ledger storage generation is
// usable for a tenant. The decision is never cached across requests.
type SchemaResolver interface {
	Resolve(ctx context.Context, tenantID string) (domain.LedgerSchema, error)
}

// LedgerService reads one account's ledger over a date range, schema
// generation notwithstanding.
type LedgerService interface {
	// ListLedgerAccounts returns the accounts available for drill-down under
	// the resolved schema.
	ListLedgerAccounts(ctx context.Context, tenantID string) (domain.LedgerSchema, []domain.LedgerAccount, error)

	// ReadAccountLedger produces opening balance, chronological entries and
	// running balances for one account. A zero ref selects the first ledger
	// account; a tenant with no accounts at all gets an empty result.
	ReadAccountLedger(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) (*domain.AccountLedger, error)
}
