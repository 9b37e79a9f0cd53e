package pgsql

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxNormalizedLedgerReader reads ledger facts from the normalized journal
// tables joined to the chart of accounts.
type PgxNormalizedLedgerReader struct {
	BaseRepository
}

func newPgxNormalizedLedgerReader(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxNormalizedLedgerReader{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxNormalizedLedgerReader)(nil)

func (r *PgxNormalizedLedgerReader) Schema() domain.LedgerSchema {
	return domain.SchemaNormalized
}

func (r *PgxNormalizedLedgerReader) ListLedgerAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
	query := `
		SELECT account_id, code, name, account_type, is_active
		FROM accounts
		WHERE tenant_id = $1
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger accounts", err)
	}
	defer rows.Close()

	accounts := []domain.LedgerAccount{}
	for rows.Next() {
		var acc domain.LedgerAccount
		var accountID, accountType string
		if err := rows.Scan(&accountID, &acc.Code, &acc.Name, &accountType, &acc.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger account row", err)
		}
		acc.Ref = domain.RealAccount(accountID)
		acc.Type = domain.AccountType(accountType)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger account rows", err)
	}
	return accounts, nil
}

func (r *PgxNormalizedLedgerReader) OpeningBalance(ctx context.Context, tenantID string, ref domain.AccountRef, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(e.debit - e.credit), 0)
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		WHERE j.tenant_id = $1 AND e.account_id = $2 AND j.journal_date < $3;
	`
	var net decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenantID, ref.AccountID, before).Scan(&net); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute opening balance", err)
	}
	return net, nil
}

func (r *PgxNormalizedLedgerReader) AccountEntries(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT j.journal_date, j.journal_id, j.journal_number, j.journal_type, e.memo, e.debit, e.credit
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		WHERE j.tenant_id = $1 AND e.account_id = $2 AND j.journal_date >= $3 AND j.journal_date <= $4
		ORDER BY j.journal_date, j.journal_id, e.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, ref.AccountID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account entries", err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(&line.Date, &line.JournalRef, &line.JournalNumber, &line.JournalType, &line.Memo, &line.Debit, &line.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger lines", err)
	}
	return lines, nil
}

// BalanceActivity aggregates in one pass: opening as the signed net before
// the period, period movement as unsigned sums within it. Accounts without
// any movement still come back with zeros so reports can show the full chart.
func (r *PgxNormalizedLedgerReader) BalanceActivity(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(CASE WHEN j.journal_date < $2 THEN e.debit - e.credit END), 0) AS opening_net,
		       COALESCE(SUM(CASE WHEN j.journal_date >= $2 THEN e.debit END), 0) AS period_debit,
		       COALESCE(SUM(CASE WHEN j.journal_date >= $2 THEN e.credit END), 0) AS period_credit
		FROM accounts a
		LEFT JOIN journal_entries e ON e.account_id = a.account_id
		LEFT JOIN journals j ON j.journal_id = e.journal_id AND j.journal_date <= $3
		WHERE a.tenant_id = $1
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance activity", err)
	}
	defer rows.Close()

	activities := []domain.AccountActivity{}
	for rows.Next() {
		var act domain.AccountActivity
		var accountID, accountType string
		if err := rows.Scan(&accountID, &act.Code, &act.Name, &accountType, &act.OpeningNet, &act.PeriodDebit, &act.PeriodCredit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance activity row", err)
		}
		act.Ref = domain.RealAccount(accountID)
		act.Type = domain.AccountType(accountType)
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance activity rows", err)
	}
	return activities, nil
}

func (r *PgxNormalizedLedgerReader) DailyMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	query := `
		SELECT j.journal_date, a.account_type, SUM(e.debit), SUM(e.credit)
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		JOIN accounts a ON a.account_id = e.account_id
		WHERE j.tenant_id = $1 AND j.journal_date >= $2 AND j.journal_date <= $3
		  AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY j.journal_date, a.account_type
		ORDER BY j.journal_date;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query daily movements", err)
	}
	defer rows.Close()

	movements := []domain.DailyMovement{}
	for rows.Next() {
		var mv domain.DailyMovement
		var accountType string
		if err := rows.Scan(&mv.Date, &accountType, &mv.Debit, &mv.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily movement row", err)
		}
		mv.Type = domain.AccountType(accountType)
		movements = append(movements, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating daily movement rows", err)
	}
	return movements, nil
}
