package dto

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"accountID,omitempty"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	Schema     string                    `json:"schema"`
	From       string                    `json:"from"`
	To         string                    `json:"to"`
	Rows       []TrialBalanceRowResponse `json:"rows"`
	ShowingAll bool                      `json:"showingAll"`
	Totals     struct {
		OpeningDebit  decimal.Decimal `json:"openingDebit"`
		OpeningCredit decimal.Decimal `json:"openingCredit"`
		PeriodDebit   decimal.Decimal `json:"periodDebit"`
		PeriodCredit  decimal.Decimal `json:"periodCredit"`
		ClosingDebit  decimal.Decimal `json:"closingDebit"`
		ClosingCredit decimal.Decimal `json:"closingCredit"`
	} `json:"totals"`
}

// AccountAmountResponse is an account with its display amount in a report
// section.
type AccountAmountResponse struct {
	AccountID   string          `json:"accountID,omitempty"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetResponse is the balance sheet report. Balanced is the read
// side's consistency signal and must not be hidden by callers.
type BalanceSheetResponse struct {
	Schema      string                  `json:"schema"`
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Balanced    bool                    `json:"balanced"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// ProfitAndLossRowResponse is one P&L account row.
type ProfitAndLossRowResponse struct {
	AccountID   string          `json:"accountID,omitempty"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
}

// DailyNetResponse is one calendar day in the dense P&L series.
type DailyNetResponse struct {
	Date string          `json:"date"`
	Net  decimal.Decimal `json:"net"`
}

// ProfitAndLossResponse is the P&L report.
type ProfitAndLossResponse struct {
	Schema     string                     `json:"schema"`
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	Rows       []ProfitAndLossRowResponse `json:"rows"`
	Daily      []DailyNetResponse         `json:"daily"`
	ShowingAll bool                       `json:"showingAll"`
	Summary    struct {
		TotalIncome  decimal.Decimal `json:"totalIncome"`
		TotalExpense decimal.Decimal `json:"totalExpense"`
		NetProfit    decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts the domain trial balance report.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Schema:     string(r.Schema),
		From:       r.From.Format(DateFormat),
		To:         r.To.Format(DateFormat),
		Rows:       make([]TrialBalanceRowResponse, len(r.Rows)),
		ShowingAll: r.ShowingAll,
	}
	for i, row := range r.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:     row.Account.AccountID,
			AccountCode:   row.AccountCode,
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			OpeningDebit:  row.OpeningDebit,
			OpeningCredit: row.OpeningCredit,
			PeriodDebit:   row.PeriodDebit,
			PeriodCredit:  row.PeriodCredit,
			ClosingDebit:  row.ClosingDebit,
			ClosingCredit: row.ClosingCredit,
		}
	}
	resp.Totals.OpeningDebit = r.Totals.OpeningDebit
	resp.Totals.OpeningCredit = r.Totals.OpeningCredit
	resp.Totals.PeriodDebit = r.Totals.PeriodDebit
	resp.Totals.PeriodCredit = r.Totals.PeriodCredit
	resp.Totals.ClosingDebit = r.Totals.ClosingDebit
	resp.Totals.ClosingCredit = r.Totals.ClosingCredit
	return resp
}

func toAccountAmountResponses(in []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(in))
	for i, a := range in {
		out[i] = AccountAmountResponse{
			AccountID:   a.Account.AccountID,
			AccountCode: a.AccountCode,
			Name:        a.Name,
			Amount:      a.Amount,
		}
	}
	return out
}

// ToBalanceSheetResponse converts the domain balance sheet report.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		Schema:      string(r.Schema),
		AsOf:        r.AsOf.Format(DateFormat),
		Assets:      toAccountAmountResponses(r.Assets),
		Liabilities: toAccountAmountResponses(r.Liabilities),
		Equity:      toAccountAmountResponses(r.Equity),
		Balanced:    r.Balanced,
	}
	resp.Summary.TotalAssets = r.TotalAssets
	resp.Summary.TotalLiabilities = r.TotalLiabilities
	resp.Summary.RetainedEarnings = r.RetainedEarnings
	resp.Summary.TotalEquity = r.TotalEquity
	return resp
}

// ToProfitAndLossResponse converts the domain P&L report.
func ToProfitAndLossResponse(r *domain.ProfitAndLossReport) ProfitAndLossResponse {
	resp := ProfitAndLossResponse{
		Schema:     string(r.Schema),
		From:       r.From.Format(DateFormat),
		To:         r.To.Format(DateFormat),
		Rows:       make([]ProfitAndLossRowResponse, len(r.Rows)),
		Daily:      make([]DailyNetResponse, len(r.Daily)),
		ShowingAll: r.ShowingAll,
	}
	for i, row := range r.Rows {
		resp.Rows[i] = ProfitAndLossRowResponse{
			AccountID:   row.Account.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Income:      row.Income,
			Expense:     row.Expense,
		}
	}
	for i, day := range r.Daily {
		resp.Daily[i] = DailyNetResponse{
			Date: day.Date.Format(DateFormat),
			Net:  day.Net,
		}
	}
	resp.Summary.TotalIncome = r.TotalIncome
	resp.Summary.TotalExpense = r.TotalExpense
	resp.Summary.NetProfit = r.NetProfit
	return resp
}
