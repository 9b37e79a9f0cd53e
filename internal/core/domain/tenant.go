package domain

// Tenant is the organization every query is scoped by. Provisioning is out of
// scope; rows are created administratively.
type Tenant struct {
	TenantID   string `json:"tenantID"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	APIKeyHash string `json:"-"` // bcrypt hash of the tenant's API key
	AuditFields
}
