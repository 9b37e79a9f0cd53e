package dto

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerAccountResponse is an account as listed by the ledger picker.
// Synthetic accounts (legacy storage without a chart) have no AccountID.
type LedgerAccountResponse struct {
	AccountID string `json:"accountID,omitempty"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsActive  bool   `json:"isActive"`
}

// LedgerLineResponse is one ledger movement with its running balance.
type LedgerLineResponse struct {
	Date           string          `json:"date"`
	JournalRef     string          `json:"journalRef"`
	JournalNumber  string          `json:"journalNumber,omitempty"`
	JournalType    string          `json:"journalType"`
	Memo           string          `json:"memo"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedgerResponse is the ledger read result for one account.
type AccountLedgerResponse struct {
	Schema         string                 `json:"schema"`
	Account        *LedgerAccountResponse `json:"account,omitempty"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	Entries        []LedgerLineResponse   `json:"entries"`
}

// ListLedgerAccountsResponse wraps the ledger account picker list.
type ListLedgerAccountsResponse struct {
	Schema   string                  `json:"schema"`
	Accounts []LedgerAccountResponse `json:"accounts"`
}

// ToLedgerAccountResponse converts one ledger account.
func ToLedgerAccountResponse(a domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		AccountID: a.Ref.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		IsActive:  a.IsActive,
	}
}

// ToAccountLedgerResponse converts a ledger read result.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	resp := AccountLedgerResponse{
		Schema:         string(l.Schema),
		OpeningBalance: l.OpeningBalance,
		Entries:        make([]LedgerLineResponse, len(l.Entries)),
	}
	if l.Account != nil {
		acc := ToLedgerAccountResponse(*l.Account)
		resp.Account = &acc
	}
	for i, e := range l.Entries {
		resp.Entries[i] = LedgerLineResponse{
			Date:           e.Date.Format(DateFormat),
			JournalRef:     e.JournalRef,
			JournalNumber:  e.JournalNumber,
			JournalType:    e.JournalType,
			Memo:           e.Memo,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	return resp
}
