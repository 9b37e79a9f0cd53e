package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/glsvc/ledger-backend/internal/utils/synthref"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLegacyLedgerReader reads ledger facts from the flat legacy rows. With
// withAccounts set, account identity comes from the chart of accounts joined
// on code; without it, accounts are synthesized from the distinct codes found
// in the rows, with the type inferred from the code's leading digit.
type PgxLegacyLedgerReader struct {
	BaseRepository
	withAccounts bool
}

func newPgxLegacyLedgerReader(pool *pgxpool.Pool, withAccounts bool) portsrepo.LedgerReader {
	return &PgxLegacyLedgerReader{BaseRepository: BaseRepository{Pool: pool}, withAccounts: withAccounts}
}

var _ portsrepo.LedgerReader = (*PgxLegacyLedgerReader)(nil)

func (r *PgxLegacyLedgerReader) Schema() domain.LedgerSchema {
	if r.withAccounts {
		return domain.SchemaLegacyAccounts
	}
	return domain.SchemaLegacySynthesized
}

// accountCode resolves the ledger-row code for a reference. Synthetic refs
// carry the code directly; real refs are looked up in the chart.
func (r *PgxLegacyLedgerReader) accountCode(ctx context.Context, tenantID string, ref domain.AccountRef) (string, error) {
	if ref.Code != "" {
		return ref.Code, nil
	}
	var code string
	query := `SELECT code FROM accounts WHERE tenant_id = $1 AND account_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, tenantID, ref.AccountID).Scan(&code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve account code", err)
	}
	return code, nil
}

func (r *PgxLegacyLedgerReader) ListLedgerAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
	if r.withAccounts {
		return r.listChartAccounts(ctx, tenantID)
	}
	return r.listSynthesizedAccounts(ctx, tenantID)
}

func (r *PgxLegacyLedgerReader) listChartAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
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
		acc.Ref = domain.AccountRef{AccountID: accountID, Code: acc.Code}
		acc.Type = domain.AccountType(accountType)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger account rows", err)
	}
	return accounts, nil
}

func (r *PgxLegacyLedgerReader) listSynthesizedAccounts(ctx context.Context, tenantID string) ([]domain.LedgerAccount, error) {
	query := `
		SELECT DISTINCT account_code
		FROM ledger_rows
		WHERE tenant_id = $1
		ORDER BY account_code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger codes", err)
	}
	defer rows.Close()

	accounts := []domain.LedgerAccount{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger code row", err)
		}
		accounts = append(accounts, synthesizedAccount(code))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger code rows", err)
	}
	return accounts, nil
}

func synthesizedAccount(code string) domain.LedgerAccount {
	return domain.LedgerAccount{
		Ref:      domain.SyntheticAccount(code),
		Code:     code,
		Name:     "Account " + code,
		Type:     domain.AccountTypeFromCode(code),
		IsActive: true,
	}
}

func (r *PgxLegacyLedgerReader) OpeningBalance(ctx context.Context, tenantID string, ref domain.AccountRef, before time.Time) (decimal.Decimal, error) {
	code, err := r.accountCode(ctx, tenantID, ref)
	if err != nil {
		return decimal.Zero, err
	}
	query := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM ledger_rows
		WHERE tenant_id = $1 AND account_code = $2 AND entry_date < $3;
	`
	var net decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenantID, code, before).Scan(&net); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute opening balance", err)
	}
	return net, nil
}

func (r *PgxLegacyLedgerReader) AccountEntries(ctx context.Context, tenantID string, ref domain.AccountRef, from, to time.Time) ([]domain.LedgerLine, error) {
	code, err := r.accountCode(ctx, tenantID, ref)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT entry_date, ref_no, ref_table, memo, debit, credit
		FROM ledger_rows
		WHERE tenant_id = $1 AND account_code = $2 AND entry_date >= $3 AND entry_date <= $4
		ORDER BY entry_date, ref_no, row_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, code, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account entries", err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		var refNo, refTable string
		if err := rows.Scan(&line.Date, &refNo, &refTable, &line.Memo, &line.Debit, &line.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line", err)
		}
		line.JournalRef = synthref.Encode(line.Date, refNo, refTable)
		line.JournalNumber = refNo
		line.JournalType = refTable
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger lines", err)
	}
	return lines, nil
}

// BalanceActivity aggregates the flat rows per code. With the chart present
// the aggregation is full-joined to it, so chart accounts without movement
// appear with zeros and row codes missing from the chart still carry their
// sums under a synthesized identity.
func (r *PgxLegacyLedgerReader) BalanceActivity(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	if r.withAccounts {
		return r.balanceActivityWithChart(ctx, tenantID, from, to)
	}
	return r.balanceActivitySynthesized(ctx, tenantID, from, to)
}

func (r *PgxLegacyLedgerReader) balanceActivityWithChart(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT COALESCE(a.code, s.account_code) AS code,
		       a.account_id, a.name, a.account_type,
		       COALESCE(s.opening_net, 0), COALESCE(s.period_debit, 0), COALESCE(s.period_credit, 0)
		FROM (
			SELECT account_code,
			       COALESCE(SUM(CASE WHEN entry_date < $2 THEN debit - credit END), 0) AS opening_net,
			       COALESCE(SUM(CASE WHEN entry_date >= $2 THEN debit END), 0) AS period_debit,
			       COALESCE(SUM(CASE WHEN entry_date >= $2 THEN credit END), 0) AS period_credit
			FROM ledger_rows
			WHERE tenant_id = $1 AND entry_date <= $3
			GROUP BY account_code
		) s
		FULL JOIN (SELECT account_id, code, name, account_type FROM accounts WHERE tenant_id = $1) a
			ON a.code = s.account_code
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance activity", err)
	}
	defer rows.Close()

	activities := []domain.AccountActivity{}
	for rows.Next() {
		var act domain.AccountActivity
		var accountID, name, accountType sql.NullString
		if err := rows.Scan(&act.Code, &accountID, &name, &accountType, &act.OpeningNet, &act.PeriodDebit, &act.PeriodCredit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance activity row", err)
		}
		if accountID.Valid {
			act.Ref = domain.AccountRef{AccountID: accountID.String, Code: act.Code}
			act.Name = name.String
			act.Type = domain.AccountType(accountType.String)
		} else {
			act.Ref = domain.SyntheticAccount(act.Code)
			act.Name = "Account " + act.Code
			act.Type = domain.AccountTypeFromCode(act.Code)
		}
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance activity rows", err)
	}
	return activities, nil
}

func (r *PgxLegacyLedgerReader) balanceActivitySynthesized(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT account_code,
		       COALESCE(SUM(CASE WHEN entry_date < $2 THEN debit - credit END), 0) AS opening_net,
		       COALESCE(SUM(CASE WHEN entry_date >= $2 THEN debit END), 0) AS period_debit,
		       COALESCE(SUM(CASE WHEN entry_date >= $2 THEN credit END), 0) AS period_credit
		FROM ledger_rows
		WHERE tenant_id = $1 AND entry_date <= $3
		GROUP BY account_code
		ORDER BY account_code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance activity", err)
	}
	defer rows.Close()

	activities := []domain.AccountActivity{}
	for rows.Next() {
		var act domain.AccountActivity
		if err := rows.Scan(&act.Code, &act.OpeningNet, &act.PeriodDebit, &act.PeriodCredit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance activity row", err)
		}
		act.Ref = domain.SyntheticAccount(act.Code)
		act.Name = "Account " + act.Code
		act.Type = domain.AccountTypeFromCode(act.Code)
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance activity rows", err)
	}
	return activities, nil
}

func (r *PgxLegacyLedgerReader) DailyMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	if r.withAccounts {
		return r.dailyMovementsWithChart(ctx, tenantID, from, to)
	}
	return r.dailyMovementsSynthesized(ctx, tenantID, from, to)
}

func (r *PgxLegacyLedgerReader) dailyMovementsWithChart(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	query := `
		SELECT l.entry_date, a.account_type, SUM(l.debit), SUM(l.credit)
		FROM ledger_rows l
		JOIN accounts a ON a.tenant_id = l.tenant_id AND a.code = l.account_code
		WHERE l.tenant_id = $1 AND l.entry_date >= $2 AND l.entry_date <= $3
		  AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY l.entry_date, a.account_type
		ORDER BY l.entry_date;
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

func (r *PgxLegacyLedgerReader) dailyMovementsSynthesized(ctx context.Context, tenantID string, from, to time.Time) ([]domain.DailyMovement, error) {
	query := `
		SELECT entry_date, account_code, SUM(debit), SUM(credit)
		FROM ledger_rows
		WHERE tenant_id = $1 AND entry_date >= $2 AND entry_date <= $3
		GROUP BY entry_date, account_code
		ORDER BY entry_date;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query daily movements", err)
	}
	defer rows.Close()

	movements := []domain.DailyMovement{}
	for rows.Next() {
		var mv domain.DailyMovement
		var code string
		if err := rows.Scan(&mv.Date, &code, &mv.Debit, &mv.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily movement row", err)
		}
		mv.Type = domain.AccountTypeFromCode(code)
		if mv.Type != domain.Revenue && mv.Type != domain.Expense {
			continue
		}
		movements = append(movements, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating daily movement rows", err)
	}
	return movements, nil
}
