package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the aggregation primitive every report is built on:
// per account, the signed net strictly before the period and the unsigned
// debit/credit sums within it.
type AccountActivity struct {
	Ref          AccountRef
	Code         string
	Name         string
	Type         AccountType
	OpeningNet   decimal.Decimal // SUM(debit - credit) dated before the period
	PeriodDebit  decimal.Decimal
	PeriodCredit decimal.Decimal
}

// ClosingNet is the signed net as of the end of the period.
func (a AccountActivity) ClosingNet() decimal.Decimal {
	return a.OpeningNet.Add(a.PeriodDebit).Sub(a.PeriodCredit)
}

// TrialBalanceRow is one account's line in a trial balance. Opening and
// closing nets are split into debit/credit presentation columns; period
// amounts are the unsigned sums.
type TrialBalanceRow struct {
	Account       AccountRef      `json:"account"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceTotals are the column-wise sums over the included rows.
type TrialBalanceTotals struct {
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceReport lists every included account's opening, period movement
// and closing balances for a date range.
type TrialBalanceReport struct {
	Schema     LedgerSchema       `json:"schema"`
	From       time.Time          `json:"from"`
	To         time.Time          `json:"to"`
	Rows       []TrialBalanceRow  `json:"rows"`
	Totals     TrialBalanceTotals `json:"totals"`
	ShowingAll bool               `json:"showingAll"` // true when the nonzero filter fell back to all accounts
}

// AccountAmount is an account with its display amount in a report section.
type AccountAmount struct {
	Account     AccountRef      `json:"account"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetReport is a point-in-time report of assets, liabilities and
// equity, with P&L accounts folded into retained earnings. Balanced must be
// surfaced to the caller; it is the read side's signal that underlying data
// may be unbalanced.
type BalanceSheetReport struct {
	Schema           LedgerSchema    `json:"schema"`
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal `json:"totalEquity"` // equity accounts plus retained earnings
	Balanced         bool            `json:"balanced"`
}

// ProfitAndLossRow is one account's contribution to the P&L.
type ProfitAndLossRow struct {
	Account     AccountRef      `json:"account"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
}

// DailyNet is one calendar day's net profit contribution. The series is
// dense: every day in the requested range appears, gaps as 0.00.
type DailyNet struct {
	Date time.Time       `json:"date"`
	Net  decimal.Decimal `json:"net"`
}

// ProfitAndLossReport is a period report of revenue and expense accounts.
type ProfitAndLossReport struct {
	Schema       LedgerSchema       `json:"schema"`
	From         time.Time          `json:"from"`
	To           time.Time          `json:"to"`
	Rows         []ProfitAndLossRow `json:"rows"`
	TotalIncome  decimal.Decimal    `json:"totalIncome"`
	TotalExpense decimal.Decimal    `json:"totalExpense"`
	NetProfit    decimal.Decimal    `json:"netProfit"`
	Daily        []DailyNet         `json:"daily"`
	ShowingAll   bool               `json:"showingAll"`
}

// DailyMovement is a raw per-day, per-account-type debit/credit sum as
// returned by a ledger reader; the reporting service folds these into the
// dense DailyNet series.
type DailyMovement struct {
	Date   time.Time
	Type   AccountType
	Debit  decimal.Decimal
	Credit decimal.Decimal
}
