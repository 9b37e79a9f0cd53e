package accounting

import (
	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to two decimal places. Running balances are rounded
// after every step, not just at the end, so the figures users see never drift.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SignedNet is the raw signed balance of a movement: debit minus credit.
func SignedNet(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}

// DisplayAmount converts a signed (debit - credit) net into the conventional
// positive figure for the account's normal balance side. Credit-normal types
// (liability, equity, revenue) are negated so a credit balance reads positive.
func DisplayAmount(t domain.AccountType, net decimal.Decimal) decimal.Decimal {
	if t.NormalBalanceSide() == domain.CreditSide {
		return net.Neg()
	}
	return net
}

// SplitNet splits a signed net into debit/credit presentation columns:
// non-negative nets go to the debit column, negative nets to the credit
// column as an absolute value.
func SplitNet(net decimal.Decimal) (dr, cr decimal.Decimal) {
	if net.IsNegative() {
		return decimal.Zero, net.Neg()
	}
	return net, decimal.Zero
}

// PAndLContribution computes an account's income and expense columns from its
// period net. Revenue accounts contribute max(-net, 0) as income; expense
// accounts max(net, 0) as expense. Other types contribute nothing.
func PAndLContribution(t domain.AccountType, net decimal.Decimal) (income, expense decimal.Decimal) {
	switch t {
	case domain.Revenue:
		if net.IsNegative() {
			return net.Neg(), decimal.Zero
		}
	case domain.Expense:
		if net.IsPositive() {
			return decimal.Zero, net
		}
	}
	return decimal.Zero, decimal.Zero
}

// DailyNetContribution is an account type's contribution to the daily chart
// series: credit-debit for revenue, debit-credit for expense, zero otherwise.
// Both sides read positive under their normal balance convention.
func DailyNetContribution(t domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	switch t {
	case domain.Revenue:
		return credit.Sub(debit)
	case domain.Expense:
		return debit.Sub(credit)
	default:
		return decimal.Zero
	}
}
