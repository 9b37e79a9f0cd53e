package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerAccount is an account as the ledger drill-down sees it: a real chart
// entry or one synthesized from distinct legacy codes.
type LedgerAccount struct {
	Ref      AccountRef  `json:"ref"`
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	IsActive bool        `json:"isActive"`
}

// LedgerLine is one movement in an account's ledger, with the running balance
// after replaying it.
type LedgerLine struct {
	Date           time.Time       `json:"date"`
	JournalRef     string          `json:"journalRef"` // journal id, or a synthref token for legacy rows
	JournalNumber  string          `json:"journalNumber,omitempty"`
	JournalType    string          `json:"journalType"`
	Memo           string          `json:"memo"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the result of reading one account over a date range.
// A tenant with no resolvable accounts gets an empty ledger, not an error.
type AccountLedger struct {
	Schema         LedgerSchema    `json:"schema"`
	Account        *LedgerAccount  `json:"account,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []LedgerLine    `json:"entries"`
}
