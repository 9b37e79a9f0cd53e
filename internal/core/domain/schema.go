package domain

// LedgerSchema identifies which ledger storage generation is usable for a
// tenant. Production data may be mid-migration, so the resolver re-evaluates
// this on every request.
type LedgerSchema string

const (
	// SchemaNormalized: journals + journal_entries populated and a chart of
	// accounts present.
	SchemaNormalized LedgerSchema = "NORMALIZED"
	// SchemaLegacyAccounts: only legacy flat rows populated, but a chart of
	// accounts exists to resolve codes against.
	SchemaLegacyAccounts LedgerSchema = "LEGACY_ACCOUNTS"
	// SchemaLegacySynthesized: legacy flat rows with no accounts table at all;
	// accounts are synthesized from distinct codes.
	SchemaLegacySynthesized LedgerSchema = "LEGACY_SYNTHESIZED"
	// SchemaAccountsOnly: a chart of accounts but no usable ledger data; all
	// balances report as zero.
	SchemaAccountsOnly LedgerSchema = "ACCOUNTS_ONLY"
	// SchemaNone: no usable source; readers return empty results.
	SchemaNone LedgerSchema = "NONE"
)
