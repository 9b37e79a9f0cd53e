package repositories

import (
	"context"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
)

// JournalRepository persists and reads normalized journals and their entries,
// plus the drill-down read over legacy pseudo-journals.
type JournalRepository interface {
	// SaveJournal persists the journal header and all its entries atomically.
	// The journal number is allocated inside the same database transaction, so
	// a failed insert never burns a number. The returned journal carries the
	// assigned number.
	SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.Entry) (*domain.Journal, error)

	// FindJournalByID retrieves a journal header by id, scoped to the tenant.
	FindJournalByID(ctx context.Context, tenantID, journalID string) (*domain.Journal, error)

	// FindEntriesByJournalID retrieves a journal's entry lines in line order,
	// with account code and name resolved.
	FindEntriesByJournalID(ctx context.Context, tenantID, journalID string) ([]domain.JournalLine, error)

	// ListJournals retrieves a page of journal headers, newest first, using a
	// keyset cursor. Returns the page and the cursor for the next one.
	ListJournals(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Journal, *string, error)

	// FindLegacyJournal synthesizes a journal view from legacy flat rows
	// sharing (entry_date, ref_no, ref_table).
	FindLegacyJournal(ctx context.Context, tenantID string, entryDate time.Time, refNo, refTable string) (*domain.JournalView, error)
}
