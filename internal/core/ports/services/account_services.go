package services

import (
	"context"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/glsvc/ledger-backend/internal/dto"
)

// AccountService manages the chart of accounts for a tenant.
type AccountService interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error
}
