package domain

// AccountRef identifies an account either by its real id or, when no chart of
// accounts exists (legacy-synthesized storage), by its code. Exactly one of
// the two fields is set; the variant is explicit rather than encoded in the
// sign of an integer id.
type AccountRef struct {
	AccountID string `json:"accountID,omitempty"`
	Code      string `json:"code,omitempty"`
}

// RealAccount references an account row by id.
func RealAccount(accountID string) AccountRef {
	return AccountRef{AccountID: accountID}
}

// SyntheticAccount references an account that exists only as a code in legacy
// flat ledger rows.
func SyntheticAccount(code string) AccountRef {
	return AccountRef{Code: code}
}

// IsSynthetic reports whether the reference is code-based.
func (r AccountRef) IsSynthetic() bool {
	return r.AccountID == "" && r.Code != ""
}

// IsZero reports whether no account was referenced at all.
func (r AccountRef) IsZero() bool {
	return r.AccountID == "" && r.Code == ""
}
