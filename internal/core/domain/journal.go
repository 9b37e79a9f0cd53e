package domain

import (
	"fmt"
	"time"
)

// DefaultJournalType is used when a posting supplies no type tag.
const DefaultJournalType = "GENERAL"

// FormatJournalNumber renders a journal number from the posting year and the
// per-tenant, per-year sequence. The sequence is zero-padded to five digits
// and widens past the pad once it outgrows it.
func FormatJournalNumber(year, seq int) string {
	return fmt.Sprintf("J-%d-%05d", year, seq)
}

// Journal represents a single, balanced accounting transaction (a voucher)
// composed of multiple entry lines.
type Journal struct {
	JournalID     string    `json:"journalID"`
	TenantID      string    `json:"tenantID"`
	JournalNumber string    `json:"journalNumber"` // J-{year}-{5-digit-seq}, unique per tenant
	JournalDate   time.Time `json:"journalDate"`
	JournalType   string    `json:"journalType"`
	Memo          string    `json:"memo"`
	SourceTable   string    `json:"sourceTable,omitempty"` // optional link to a source document
	SourceID      string    `json:"sourceID,omitempty"`
	AuditFields
}

// JournalView is a journal header together with its resolved entry lines,
// as used by the drill-down surface. For legacy pseudo-journals the header is
// synthesized from grouped flat rows and the id is a synthref token.
type JournalView struct {
	Journal
	Lines []JournalLine `json:"lines"`
}
