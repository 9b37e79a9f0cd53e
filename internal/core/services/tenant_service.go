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
	"github.com/glsvc/ledger-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tenantService resolves and authenticates tenants. API keys are stored as
// bcrypt hashes; successful key verification can be exchanged for a short
// lived bearer token carrying the tenant id as subject.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepository
	cfg        *config.Config
}

func NewTenantService(tenantRepo portsrepo.TenantRepository, cfg *config.Config) portssvc.TenantService {
	return &tenantService{tenantRepo: tenantRepo, cfg: cfg}
}

var _ portssvc.TenantService = (*tenantService)(nil)

func (s *tenantService) Authenticate(ctx context.Context, slug, apiKey string) (*dto.TokenResponse, error) {
	tenant, err := s.VerifyAPIKey(ctx, slug, apiKey)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   tenant.TenantID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("tenant_id", tenant.TenantID))
		return nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	s.LogInfo(ctx, "Tenant authenticated", slog.String("tenant_id", tenant.TenantID))
	return &dto.TokenResponse{
		Token:     signed,
		TenantID:  tenant.TenantID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *tenantService) VerifyAPIKey(ctx context.Context, slug, apiKey string) (*domain.Tenant, error) {
	if slug == "" || apiKey == "" {
		return nil, apperrors.ErrForbidden
	}
	tenant, err := s.tenantRepo.FindTenantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same signal for unknown slug and wrong key.
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tenant.APIKeyHash), []byte(apiKey)); err != nil {
		return nil, apperrors.ErrForbidden
	}
	return tenant, nil
}

func (s *tenantService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrForbidden, err.Error())
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrForbidden
	}
	return claims.Subject, nil
}

func (s *tenantService) Resolve(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}
