// Package csvexport renders reports as CSV for spreadsheet download.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// utf8BOM makes Excel detect UTF-8 instead of falling back to the locale
// code page.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var trialBalanceHeader = []string{
	"Account", "Name",
	"Opening Dr", "Opening Cr",
	"Period Dr", "Period Cr",
	"Closing Dr", "Closing Cr",
}

// TrialBalance renders a trial balance report with the fixed column order and
// a trailing Totals row.
func TrialBalance(report *domain.TrialBalanceReport) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(trialBalanceHeader); err != nil {
		return nil, fmt.Errorf("writing trial balance header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.AccountCode,
			row.AccountName,
			amount(row.OpeningDebit),
			amount(row.OpeningCredit),
			amount(row.PeriodDebit),
			amount(row.PeriodCredit),
			amount(row.ClosingDebit),
			amount(row.ClosingCredit),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing trial balance row for account %s: %w", row.AccountCode, err)
		}
	}

	totals := []string{
		"", "Totals",
		amount(report.Totals.OpeningDebit),
		amount(report.Totals.OpeningCredit),
		amount(report.Totals.PeriodDebit),
		amount(report.Totals.PeriodCredit),
		amount(report.Totals.ClosingDebit),
		amount(report.Totals.ClosingCredit),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("writing trial balance totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing trial balance csv: %w", err)
	}
	return buf.Bytes(), nil
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
