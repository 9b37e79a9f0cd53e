package models

// Tenant is the tenants table row.
type Tenant struct {
	TenantID   string `db:"tenant_id"`
	Slug       string `db:"slug"`
	Name       string `db:"name"`
	APIKeyHash string `db:"api_key_hash"`
	AuditFields
}
