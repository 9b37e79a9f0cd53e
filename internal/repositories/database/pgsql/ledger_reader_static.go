package pgsql

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxAccountsOnlyLedgerReader serves tenants that have a chart of accounts
// but no movement data of either generation. The chart is listed; every
// balance and movement query answers zero or empty.
type PgxAccountsOnlyLedgerReader struct {
	normalized *PgxNormalizedLedgerReader
}

func newPgxAccountsOnlyLedgerReader(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxAccountsOnlyLedgerReader{
		normalized: &PgxNormalizedLedgerReader{BaseRepository: BaseRepository{Pool: pool}},
	}
}

var _ portsrepo.LedgerReader = (*PgxAccountsOnlyLedgerReader)(nil)

func (r *PgxAccountsOnlyLedgerReader) Schema() domain.LedgerSchema {
	return domain.SchemaAccountsOnly
}

func (r *PgxAccountsOnlyLedgerReader) ListLedgerAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
	return r.normalized.ListLedgerAccounts(ctx, tenantID)
}

func (r *PgxAccountsOnlyLedgerReader) OpeningBalance(ctx context.Context, tenantID string, ref domain.AccountRef, before time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *PgxAccountsOnlyLedgerReader) AccountEntries(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) ([]domain.LedgerLine, error) {
	return []domain.LedgerLine{}, nil
}

// BalanceActivity lists every chart account with zero opening and movement,
// so reports render the full chart at 0.00 rather than erroring.
func (r *PgxAccountsOnlyLedgerReader) BalanceActivity(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	accounts, err := r.normalized.ListLedgerAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	activities := make([]domain.AccountActivity, len(accounts))
	for i, acc := range accounts {
		activities[i] = domain.AccountActivity{
			Ref:  acc.Ref,
			Code: acc.Code,
			Name: acc.Name,
			Type: acc.Type,
		}
	}
	return activities, nil
}

func (r *PgxAccountsOnlyLedgerReader) DailyMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	return []domain.DailyMovement{}, nil
}

// EmptyLedgerReader serves tenants with no ledger storage at all. Every read
// is empty and no query touches the database.
type EmptyLedgerReader struct{}

var _ portsrepo.LedgerReader = (*EmptyLedgerReader)(nil)

func (EmptyLedgerReader) Schema() domain.LedgerSchema {
	return domain.SchemaNone
}

func (EmptyLedgerReader) ListLedgerAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
	return []domain.LedgerAccount{}, nil
}

func (EmptyLedgerReader) OpeningBalance(ctx context.Context, tenantID string, ref domain.AccountRef, before time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (EmptyLedgerReader) AccountEntries(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) ([]domain.LedgerLine, error) {
	return []domain.LedgerLine{}, nil
}

func (EmptyLedgerReader) BalanceActivity(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	return []domain.AccountActivity{}, nil
}

func (EmptyLedgerReader) DailyMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	return []domain.DailyMovement{}, nil
}
