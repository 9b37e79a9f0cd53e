package models

import "time"

// Journal is the journals table row. journal_seq and journal_year back the
// per-tenant-per-year number allocation; journal_number is the rendered
// J-{year}-{seq} identifier with a unique (tenant_id, journal_number) index.
type Journal struct {
	JournalID     string    `db:"journal_id"`
	TenantID      string    `db:"tenant_id"`
	JournalNumber string    `db:"journal_number"`
	JournalSeq    int       `db:"journal_seq"`
	JournalYear   int       `db:"journal_year"`
	JournalDate   time.Time `db:"journal_date"`
	JournalType   string    `db:"journal_type"`
	Memo          string    `db:"memo"`
	SourceTable   string    `db:"source_table"` // nullable
	SourceID      string    `db:"source_id"`    // nullable
	AuditFields
}
