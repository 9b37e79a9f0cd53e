package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portsrepo "github.com/glsvc/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/google/uuid"
)

// accountService manages the chart of accounts for a tenant.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountService = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, apperrors.FieldErrors{"accountType": err.Error()}
	}

	if req.ParentAccountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, req.ParentAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.FieldErrors{"parentAccountID": "parent account not found"}
			}
			return nil, err
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: req.ParentAccountID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := portsrepo.AccountListFilter{
		Search:          params.Search,
		ActiveOnly:      params.ActiveOnly,
		ParentAccountID: params.ParentAccountID,
		SortByCodeOnly:  params.SortByCode,
	}
	if params.Type != "" {
		accountType, err := domain.ParseAccountType(params.Type)
		if err != nil {
			return nil, apperrors.FieldErrors{"type": err.Error()}
		}
		filter.Type = accountType
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// UpdateAccount applies a partial update. Code and type history stay intact
// for posted journals; only metadata and the active flag change.
func (s *accountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		accountType, err := domain.ParseAccountType(*req.AccountType)
		if err != nil {
			return nil, apperrors.FieldErrors{"accountType": err.Error()}
		}
		account.AccountType = accountType
	}
	if req.ParentAccountID != nil {
		if *req.ParentAccountID == accountID {
			return nil, apperrors.FieldErrors{"parentAccountID": "account cannot be its own parent"}
		}
		if *req.ParentAccountID != "" {
			if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, *req.ParentAccountID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.FieldErrors{"parentAccountID": "parent account not found"}
				}
				return nil, err
			}
		}
		account.ParentAccountID = *req.ParentAccountID
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-deactivates an account. Accounts are never hard
// deleted because posted journals reference them.
func (s *accountService) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
