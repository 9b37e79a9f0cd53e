package domain

import "github.com/shopspring/decimal"

// Entry is one debit-or-credit movement against one account within one
// journal. Exactly one of Debit/Credit is greater than zero; both are
// non-negative and rounded to two decimal places.
type Entry struct {
	EntryID   string          `json:"entryID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	LineNo    int             `json:"lineNo"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
	AuditFields
}

// JournalLine is an entry resolved for presentation: the account it hit is
// carried alongside, by reference for normalized storage or by code alone for
// legacy rows.
type JournalLine struct {
	EntryID     string          `json:"entryID,omitempty"`
	Account     AccountRef      `json:"account"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	LineNo      int             `json:"lineNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}
