package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide is the side on which an account type normally carries its balance.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// normalBalanceSides is the single source of truth for sign conventions across
// all reports. A positive (debit - credit) net is a normal balance for
// debit-side types; credit-side types carry their normal balance as a negative
// net and are negated for display.
var normalBalanceSides = map[AccountType]BalanceSide{
	Asset:     DebitSide,
	Expense:   DebitSide,
	Liability: CreditSide,
	Equity:    CreditSide,
	Revenue:   CreditSide,
}

// NormalBalanceSide returns the normal balance side for an account type.
func (t AccountType) NormalBalanceSide() BalanceSide {
	side, ok := normalBalanceSides[t]
	if !ok {
		return DebitSide
	}
	return side
}

// ParseAccountType canonicalizes a user-supplied account type. Matching is
// case-insensitive and "income" is accepted as a synonym for REVENUE.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASSET":
		return Asset, nil
	case "LIABILITY":
		return Liability, nil
	case "EQUITY":
		return Equity, nil
	case "REVENUE", "INCOME":
		return Revenue, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// AccountTypeFromCode infers an account type from the leading character of an
// account code. This is the convention used when only a legacy flat ledger is
// available and no chart of accounts exists.
func AccountTypeFromCode(code string) AccountType {
	if code == "" {
		return Equity
	}
	switch code[0] {
	case '1':
		return Asset
	case '2':
		return Liability
	case '3':
		return Equity
	case '4':
		return Revenue
	case '5':
		return Expense
	default:
		return Equity
	}
}

// Account represents one chart-of-accounts entry for a tenant.
type Account struct {
	AccountID       string      `json:"accountID"`
	TenantID        string      `json:"tenantID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID"` // empty when the account has no parent
	IsActive        bool        `json:"isActive"`
	AuditFields
}
