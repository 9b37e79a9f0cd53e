package repositories

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
)

// AccountListFilter narrows ListAccounts results. Zero values mean "no
// filter" for that dimension.
type AccountListFilter struct {
	Search          string
	Type            domain.AccountType
	ActiveOnly      bool
	ParentAccountID string
	// SortByCodeOnly orders by code alone instead of the default (type, code).
	SortByCodeOnly bool
}

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account by id, scoped to the tenant.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by id for a tenant.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the tenant's accounts matching the filter.
	// Returns an empty slice, never an error, when nothing matches.
	ListAccounts(ctx context.Context, tenantID string, filter AccountListFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive. Deactivation never
	// cascades to children.
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error
}

// AccountRepository combines reads and writes over the chart of accounts.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
