package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	"github.com/glsvc/ledger-backend/internal/models"
	"github.com/glsvc/ledger-backend/internal/utils/mapping"
	"github.com/glsvc/ledger-backend/internal/utils/pagination"
	"github.com/glsvc/ledger-backend/internal/utils/synthref"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// journalNumberRetries bounds how often SaveJournal retries after losing a
// journal number to a concurrent poster.
const journalNumberRetries = 3

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, tenant_id, journal_number, journal_seq, journal_year, journal_date, journal_type, memo, source_table, source_id, created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	var sourceTable, sourceID sql.NullString
	err := row.Scan(
		&m.JournalID,
		&m.TenantID,
		&m.JournalNumber,
		&m.JournalSeq,
		&m.JournalYear,
		&m.JournalDate,
		&m.JournalType,
		&m.Memo,
		&sourceTable,
		&sourceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Journal{}, err
	}
	m.SourceTable = sourceTable.String
	m.SourceID = sourceID.String
	return m, nil
}

// SaveJournal inserts the journal header and all entry lines in one
// transaction. The journal number is taken from a per-tenant-per-year counter
// row locked FOR UPDATE within the same transaction, so the allocated number
// commits together with the journal or not at all. A unique index on
// (tenant_id, journal_number) backstops the counter; losing that race rolls
// back and retries with a fresh number.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.Entry) (*domain.Journal, error) {
	var lastErr error
	for attempt := 0; attempt < journalNumberRetries; attempt++ {
		saved, err := r.saveJournalOnce(ctx, journal, entries)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, apperrors.NewAppError(500, "failed to allocate a journal number after retries", lastErr)
}

func (r *PgxJournalRepository) saveJournalOnce(ctx context.Context, journal domain.Journal, entries []domain.Entry) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction for journal save", err)
	}
	defer r.Rollback(ctx, tx)

	year := journal.JournalDate.Year()
	seq, err := nextJournalSeq(ctx, tx, journal.TenantID, year)
	if err != nil {
		return nil, err
	}

	journal.JournalNumber = domain.FormatJournalNumber(year, seq)

	m := mapping.ToModelJournal(journal)
	m.JournalSeq = seq

	insertJournal := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	var sourceTable, sourceID sql.NullString
	if m.SourceTable != "" {
		sourceTable = sql.NullString{String: m.SourceTable, Valid: true}
	}
	if m.SourceID != "" {
		sourceID = sql.NullString{String: m.SourceID, Valid: true}
	}

	_, err = tx.Exec(ctx, insertJournal,
		m.JournalID,
		m.TenantID,
		m.JournalNumber,
		m.JournalSeq,
		m.JournalYear,
		m.JournalDate,
		m.JournalType,
		m.Memo,
		sourceTable,
		sourceID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: journal number %s already taken", apperrors.ErrConflict, m.JournalNumber)
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	insertEntry := `
		INSERT INTO journal_entries (entry_id, journal_id, account_id, line_no, debit, credit, memo, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		em := mapping.ToModelEntry(entry)
		batch.Queue(insertEntry,
			em.EntryID,
			em.JournalID,
			em.AccountID,
			em.LineNo,
			em.Debit,
			em.Credit,
			em.Memo,
			em.CreatedAt,
			em.CreatedBy,
			em.LastUpdatedAt,
			em.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert journal entry batch", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close journal entry batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit journal save", err)
	}
	return &journal, nil
}

// nextJournalSeq bumps the tenant/year counter under a row lock and returns
// the new sequence value.
func nextJournalSeq(ctx context.Context, tx pgx.Tx, tenantID string, year int) (int, error) {
	upsert := `
		INSERT INTO journal_counters (tenant_id, journal_year, last_seq)
		VALUES ($1, $2, 0)
		ON CONFLICT (tenant_id, journal_year) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, upsert, tenantID, year); err != nil {
		return 0, apperrors.NewAppError(500, "failed to ensure journal counter row", err)
	}

	var seq int
	lock := `SELECT last_seq FROM journal_counters WHERE tenant_id = $1 AND journal_year = $2 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lock, tenantID, year).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock journal counter row", err)
	}

	seq++
	bump := `UPDATE journal_counters SET last_seq = $3 WHERE tenant_id = $1 AND journal_year = $2;`
	if _, err := tx.Exec(ctx, bump, tenantID, year, seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance journal counter", err)
	}
	return seq, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, tenantID, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE tenant_id = $1 AND journal_id = $2;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, tenantID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	j := mapping.ToDomainJournal(m)
	return &j, nil
}

func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, tenantID, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT e.entry_id, e.account_id, a.code, a.name, e.line_no, e.debit, e.credit, e.memo
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		JOIN accounts a ON a.account_id = e.account_id
		WHERE j.tenant_id = $1 AND e.journal_id = $2
		ORDER BY e.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		var accountID string
		if err := rows.Scan(&line.EntryID, &accountID, &line.AccountCode, &line.AccountName, &line.LineNo, &line.Debit, &line.Credit, &line.Memo); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		line.Account = domain.RealAccount(accountID)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return lines, nil
}

// ListJournals pages newest-first on (journal_date, created_at) with a keyset
// cursor, so concurrent posting never shifts a page.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE tenant_id = $1`
	args := []any{tenantID}

	if nextToken != nil && *nextToken != "" {
		journalDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, journalDate, createdAt)
		query += ` AND (journal_date, created_at) < ($2, $3)`
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY journal_date DESC, created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journals", err)
	}
	defer rows.Close()

	journals := []models.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		journals = append(journals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	var token *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		t := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		token = &t
	}

	out := make([]domain.Journal, len(journals))
	for i, m := range journals {
		out[i] = mapping.ToDomainJournal(m)
	}
	return out, token, nil
}

// FindLegacyJournal groups flat ledger rows sharing (entry_date, ref_no,
// ref_table) into a synthesized journal view. The view's journal id is the
// stateless drill-down token for the group.
func (r *PgxJournalRepository) FindLegacyJournal(ctx context.Context, tenantID string, entryDate time.Time, refNo, refTable string) (*domain.JournalView, error) {
	query := `
		SELECT l.account_code, COALESCE(a.name, ''), l.memo, l.debit, l.credit
		FROM ledger_rows l
		LEFT JOIN accounts a ON a.tenant_id = l.tenant_id AND a.code = l.account_code
		WHERE l.tenant_id = $1 AND l.entry_date = $2 AND l.ref_no = $3 AND l.ref_table = $4
		ORDER BY l.row_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, entryDate, refNo, refTable)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query legacy journal rows", err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	memo := ""
	for rows.Next() {
		var m models.LedgerRow
		var accountName string
		if err := rows.Scan(&m.AccountCode, &accountName, &m.Memo, &m.Debit, &m.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan legacy journal row", err)
		}
		if memo == "" {
			memo = m.Memo
		}
		lines = append(lines, mapping.ToDomainLegacyLine(m, accountName, len(lines)+1))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating legacy journal rows", err)
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrNotFound
	}

	view := &domain.JournalView{
		Journal: domain.Journal{
			JournalID:     synthref.Encode(entryDate, refNo, refTable),
			TenantID:      tenantID,
			JournalNumber: refNo,
			JournalDate:   entryDate,
			JournalType:   refTable,
			Memo:          memo,
			SourceTable:   refTable,
			SourceID:      refNo,
		},
		Lines: lines,
	}
	return view, nil
}
