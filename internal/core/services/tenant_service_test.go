package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/core/services"
	"github.com/glsvc/ledger-backend/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const testAPIKey = "sk-test-key"

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTenantRepository
	service  portssvc.TenantService
	tenant   *domain.Tenant
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTenantRepository)
	suite.service = services.NewTenantService(suite.mockRepo, &config.Config{
		JWTSecret:         "unit-test-secret",
		JWTIssuer:         "ledger-backend",
		JWTExpiryDuration: time.Hour,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.tenant = &domain.Tenant{
		TenantID:   uuid.NewString(),
		Slug:       "acme",
		Name:       "Acme Ltd",
		APIKeyHash: string(hash),
	}
}

func (suite *TenantServiceTestSuite) TestAuthenticateIssuesVerifiableToken() {
	suite.mockRepo.On("FindTenantBySlug", mock.Anything, "acme").Return(suite.tenant, nil).Once()

	resp, err := suite.service.Authenticate(context.Background(), "acme", testAPIKey)

	suite.Require().NoError(err)
	suite.Equal(suite.tenant.TenantID, resp.TenantID)
	suite.True(resp.ExpiresAt.After(time.Now()))

	// The issued token must round-trip through our own verifier.
	subject, err := suite.service.VerifyToken(context.Background(), resp.Token)
	suite.Require().NoError(err)
	suite.Equal(suite.tenant.TenantID, subject)
}

func (suite *TenantServiceTestSuite) TestVerifyAPIKey_WrongKey() {
	suite.mockRepo.On("FindTenantBySlug", mock.Anything, "acme").Return(suite.tenant, nil).Once()

	_, err := suite.service.VerifyAPIKey(context.Background(), "acme", "wrong-key")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestVerifyAPIKey_UnknownSlug() {
	suite.mockRepo.On("FindTenantBySlug", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.VerifyAPIKey(context.Background(), "ghost", testAPIKey)

	// Unknown slug and wrong key are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestVerifyAPIKey_EmptyCredentials() {
	_, err := suite.service.VerifyAPIKey(context.Background(), "", "")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTenantBySlug", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestVerifyToken_Garbage() {
	_, err := suite.service.VerifyToken(context.Background(), "not-a-jwt")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestVerifyToken_WrongSecret() {
	other := services.NewTenantService(suite.mockRepo, &config.Config{
		JWTSecret:         "different-secret",
		JWTIssuer:         "ledger-backend",
		JWTExpiryDuration: time.Hour,
	})
	suite.mockRepo.On("FindTenantBySlug", mock.Anything, "acme").Return(suite.tenant, nil).Once()

	resp, err := other.Authenticate(context.Background(), "acme", testAPIKey)
	suite.Require().NoError(err)

	_, err = suite.service.VerifyToken(context.Background(), resp.Token)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
