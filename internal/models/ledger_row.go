package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is the legacy flat ledger generation: one debit-or-credit
// movement denormalized with the account code and grouping reference carried
// inline. Rows sharing (entry_date, ref_no, ref_table) form one
// pseudo-journal. This service never writes these rows; they exist to read
// tenants whose data predates the normalized schema.
type LedgerRow struct {
	RowID       int64           `db:"row_id"`
	TenantID    string          `db:"tenant_id"`
	EntryDate   time.Time       `db:"entry_date"`
	AccountCode string          `db:"account_code"`
	RefNo       string          `db:"ref_no"`
	RefTable    string          `db:"ref_table"`
	Memo        string          `db:"memo"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
