package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/glsvc/ledger-backend/internal/handlers"
	"github.com/glsvc/ledger-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error {
	args := m.Called(ctx, tenantID, accountID, userID)
	return args.Error(0)
}

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

var _ portssvc.TenantService = (*MockTenantService)(nil)

func (m *MockTenantService) Authenticate(ctx context.Context, slug, apiKey string) (*dto.TokenResponse, error) {
	args := m.Called(ctx, slug, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockTenantService) VerifyAPIKey(ctx context.Context, slug, apiKey string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockTenantService) Resolve(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockTenantService  *MockTenantService
	tenantID           string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockTenantService = new(MockTenantService)
	suite.tenantID = uuid.NewString()

	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Tenant:  suite.mockTenantService,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, services)
}

func (suite *AccountHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer test-token")
	suite.mockTenantService.On("VerifyToken", mock.Anything, "test-token").Return(suite.tenantID, nil).Once()
	return req
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	body, _ := json.Marshal(dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET"})
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.tenantID, mock.AnythingOfType("dto.CreateAccountRequest"), suite.tenantID).
		Return(created, nil).Once()

	req := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/tenants/%s/accounts", suite.tenantID), body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1000", resp.Code)
	suite.Equal("ASSET", resp.AccountType)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	body, _ := json.Marshal(dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET"})

	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.tenantID, mock.Anything, suite.tenantID).
		Return(nil, fmt.Errorf("%w: account code 1000 already exists", apperrors.ErrDuplicate)).Once()

	req := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/tenants/%s/accounts", suite.tenantID), body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.tenantID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s/accounts/%s", suite.tenantID, accountID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_NoContent() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeactivateAccount", mock.Anything, suite.tenantID, accountID, suite.tenantID).
		Return(nil).Once()

	req := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/tenants/%s/accounts/%s", suite.tenantID, accountID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AccountHandlerTestSuite) TestMissingCredentials() {
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s/accounts", suite.tenantID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestTenantPathMismatchReads404() {
	otherTenant := uuid.NewString()

	// Credentials are valid, but they resolve to a different tenant than the
	// one addressed in the path.
	req := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s/accounts", otherTenant), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestAPIKeyHeaderAuth() {
	tenant := &domain.Tenant{TenantID: suite.tenantID, Slug: "acme"}
	suite.mockTenantService.On("VerifyAPIKey", mock.Anything, "acme", "sk-test").Return(tenant, nil).Once()
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.tenantID, mock.AnythingOfType("dto.ListAccountsParams")).
		Return([]domain.Account{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s/accounts", suite.tenantID), nil)
	req.Header.Set("X-API-Key", "sk-test")
	req.Header.Set("X-Tenant-Slug", "acme")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTenantService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
