package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/utils/accounting"
	"github.com/glsvc/ledger-backend/internal/utils/csvexport"
	"github.com/shopspring/decimal"
)

// balancedTolerance is the epsilon for the balance sheet's balanced check.
// Display figures are rounded per account, so totals can disagree by a cent.
var balancedTolerance = decimal.NewFromFloat(0.01)

// reportingService builds trial balance, balance sheet and P&L views. All
// three rest on the same per-account activity aggregation, so they agree
// with each other regardless of which storage generation served them.
type reportingService struct {
	BaseService
	resolver portssvc.SchemaResolver
	readers  portsrepo.LedgerReaderFactory
}

func NewReportingService(resolver portssvc.SchemaResolver, readers portsrepo.LedgerReaderFactory) portssvc.ReportingService {
	return &reportingService{resolver: resolver, readers: readers}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) activity(ctx context.Context, tenantID string, from, to time.Time) (domain.LedgerSchema, []domain.AccountActivity, error) {
	schema, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return domain.SchemaNone, nil, err
	}
	activities, err := s.readers.ReaderFor(schema).BalanceActivity(ctx, tenantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate balance activity", slog.String("schema", string(schema)))
		return schema, nil, err
	}
	return schema, activities, nil
}

func (s *reportingService) TrialBalance(ctx context.Context, tenantID string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	schema, activities, err := s.activity(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, len(activities))
	for i, act := range activities {
		rows[i] = trialBalanceRow(act)
	}

	included, showingAll := fallbackToAll(rows, trialBalanceRowHasActivity)

	report := &domain.TrialBalanceReport{
		Schema:     schema,
		From:       from,
		To:         to,
		Rows:       included,
		ShowingAll: showingAll,
	}
	for _, row := range report.Rows {
		report.Totals.OpeningDebit = report.Totals.OpeningDebit.Add(row.OpeningDebit)
		report.Totals.OpeningCredit = report.Totals.OpeningCredit.Add(row.OpeningCredit)
		report.Totals.PeriodDebit = report.Totals.PeriodDebit.Add(row.PeriodDebit)
		report.Totals.PeriodCredit = report.Totals.PeriodCredit.Add(row.PeriodCredit)
		report.Totals.ClosingDebit = report.Totals.ClosingDebit.Add(row.ClosingDebit)
		report.Totals.ClosingCredit = report.Totals.ClosingCredit.Add(row.ClosingCredit)
	}
	return report, nil
}

func trialBalanceRow(act domain.AccountActivity) domain.TrialBalanceRow {
	openingDr, openingCr := accounting.SplitNet(accounting.Round2(act.OpeningNet))
	closingDr, closingCr := accounting.SplitNet(accounting.Round2(act.ClosingNet()))
	return domain.TrialBalanceRow{
		Account:       act.Ref,
		AccountCode:   act.Code,
		AccountName:   act.Name,
		AccountType:   act.Type,
		OpeningDebit:  openingDr,
		OpeningCredit: openingCr,
		PeriodDebit:   accounting.Round2(act.PeriodDebit),
		PeriodCredit:  accounting.Round2(act.PeriodCredit),
		ClosingDebit:  closingDr,
		ClosingCredit: closingCr,
	}
}

func trialBalanceRowHasActivity(row domain.TrialBalanceRow) bool {
	return !row.OpeningDebit.IsZero() || !row.OpeningCredit.IsZero() ||
		!row.PeriodDebit.IsZero() || !row.PeriodCredit.IsZero() ||
		!row.ClosingDebit.IsZero() || !row.ClosingCredit.IsZero()
}

// fallbackToAll keeps only rows matching the predicate, but falls back to
// every row when the filter would blank a non-empty chart. A report over a
// quiet period should show the chart at zero, not an empty table.
func fallbackToAll[T any](rows []T, keep func(T) bool) ([]T, bool) {
	included := make([]T, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			included = append(included, row)
		}
	}
	if len(included) == 0 && len(rows) > 0 {
		return rows, true
	}
	return included, false
}

func (s *reportingService) TrialBalanceCSV(ctx context.Context, tenantID string, from, to time.Time) ([]byte, error) {
	report, err := s.TrialBalance(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	return csvexport.TrialBalance(report)
}

// BalanceSheet reports assets, liabilities and equity as of one date. P&L
// account nets are folded into a single retained earnings figure inside
// equity; the negation turns profit (credit-heavy net) into a positive
// retained earnings number.
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	schema, activities, err := s.activity(ctx, tenantID, asOf, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		Schema:      schema,
		AsOf:        asOf,
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}

	plNet := decimal.Zero
	for _, act := range activities {
		net := accounting.Round2(act.ClosingNet())
		entry := domain.AccountAmount{
			Account:     act.Ref,
			AccountCode: act.Code,
			Name:        act.Name,
			Amount:      accounting.DisplayAmount(act.Type, net),
		}
		switch act.Type {
		case domain.Asset:
			report.Assets = append(report.Assets, entry)
			report.TotalAssets = report.TotalAssets.Add(entry.Amount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, entry)
			report.TotalLiabilities = report.TotalLiabilities.Add(entry.Amount)
		case domain.Equity:
			report.Equity = append(report.Equity, entry)
			report.TotalEquity = report.TotalEquity.Add(entry.Amount)
		case domain.Revenue, domain.Expense:
			plNet = plNet.Add(net)
		}
	}

	report.RetainedEarnings = accounting.Round2(plNet.Neg())
	report.TotalEquity = report.TotalEquity.Add(report.RetainedEarnings)

	gap := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity)).Abs()
	report.Balanced = gap.LessThanOrEqual(balancedTolerance)
	if !report.Balanced {
		s.LogInfo(ctx, "Balance sheet out of balance",
			slog.String("tenant_id", tenantID),
			slog.String("gap", gap.StringFixed(2)))
	}
	return report, nil
}

// ProfitAndLoss reports revenue and expense accounts over a period, plus a
// dense per-day net series for charting. includeAll bypasses the type and
// nonzero filters; an all-zero result also falls back to showing everything.
func (s *reportingService) ProfitAndLoss(ctx context.Context, tenantID string, from, to time.Time, includeAll bool) (*domain.ProfitAndLossReport, error) {
	schema, activities, err := s.activity(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProfitAndLossRow, len(activities))
	for i, act := range activities {
		net := accounting.Round2(act.PeriodDebit.Sub(act.PeriodCredit))
		income, expense := accounting.PAndLContribution(act.Type, net)
		rows[i] = domain.ProfitAndLossRow{
			Account:     act.Ref,
			AccountCode: act.Code,
			AccountName: act.Name,
			AccountType: act.Type,
			Income:      income,
			Expense:     expense,
		}
	}

	report := &domain.ProfitAndLossReport{
		Schema: schema,
		From:   from,
		To:     to,
	}
	if includeAll {
		report.Rows = rows
		report.ShowingAll = true
	} else {
		report.Rows, report.ShowingAll = fallbackToAll(rows, func(row domain.ProfitAndLossRow) bool {
			return !row.Income.IsZero() || !row.Expense.IsZero()
		})
	}

	for _, row := range report.Rows {
		report.TotalIncome = report.TotalIncome.Add(row.Income)
		report.TotalExpense = report.TotalExpense.Add(row.Expense)
	}
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpense)

	daily, err := s.dailySeries(ctx, tenantID, schema, from, to)
	if err != nil {
		return nil, err
	}
	report.Daily = daily
	return report, nil
}

// dailySeries produces one point per calendar day in [from, to] inclusive,
// zero-filled where no movement happened.
func (s *reportingService) dailySeries(ctx context.Context, tenantID string, schema domain.LedgerSchema, from, to time.Time) ([]domain.DailyNet, error) {
	movements, err := s.readers.ReaderFor(schema).DailyMovements(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]decimal.Decimal)
	for _, mv := range movements {
		key := mv.Date.Format("2006-01-02")
		byDay[key] = byDay[key].Add(accounting.DailyNetContribution(mv.Type, mv.Debit, mv.Credit))
	}

	series := []domain.DailyNet{}
	for day := dateOnly(from); !day.After(dateOnly(to)); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.DailyNet{
			Date: day,
			Net:  accounting.Round2(byDay[day.Format("2006-01-02")]),
		})
	}
	return series, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
