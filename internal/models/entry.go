package models

import "github.com/shopspring/decimal"

// Entry is the journal_entries table row. A check constraint enforces that
// exactly one of debit/credit is positive.
type Entry struct {
	EntryID   string          `db:"entry_id"`
	JournalID string          `db:"journal_id"`
	AccountID string          `db:"account_id"`
	LineNo    int             `db:"line_no"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Memo      string          `db:"memo"`
	AuditFields
}
