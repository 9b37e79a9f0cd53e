package dto

import "time"

// TokenRequest exchanges a tenant slug and API key for a bearer token.
type TokenRequest struct {
	TenantSlug string `json:"tenantSlug" binding:"required"`
	APIKey     string `json:"apiKey" binding:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	TenantID  string    `json:"tenantID"`
	ExpiresAt time.Time `json:"expiresAt"`
}
