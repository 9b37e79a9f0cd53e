package services_test

import (
	"context"
	"testing"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/core/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountService
	tenantID string
	userID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET"}

	suite.mockRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.Equal(suite.tenantID, account.TenantID)
			suite.Equal(domain.Asset, account.AccountType)
			suite.True(account.IsActive)
			suite.NotEmpty(account.AccountID)
			suite.Equal(suite.userID, account.CreatedBy)
		}).
		Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000", account.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_IncomeAlias() {
	req := dto.CreateAccountRequest{Code: "4000", Name: "Sales", AccountType: "income"}

	suite.mockRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			suite.Equal(domain.Revenue, args.Get(1).(domain.Account).AccountType)
		}).
		Return(nil).Once()

	_, err := suite.service.CreateAccount(context.Background(), suite.tenantID, req, suite.userID)

	suite.NoError(err)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	req := dto.CreateAccountRequest{Code: "9000", Name: "Mystery", AccountType: "SUSPENSE"}

	_, err := suite.service.CreateAccount(context.Background(), suite.tenantID, req, suite.userID)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "accountType")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET"}

	suite.mockRepo.On("SaveAccount", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(context.Background(), suite.tenantID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingParent() {
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1010", Name: "Petty Cash", AccountType: "ASSET", ParentAccountID: parentID}

	suite.mockRepo.On("FindAccountByID", mock.Anything, suite.tenantID, parentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(context.Background(), suite.tenantID, req, suite.userID)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "parentAccountID")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Partial() {
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		TenantID:    suite.tenantID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	newName := "Cash on Hand"

	suite.mockRepo.On("FindAccountByID", mock.Anything, suite.tenantID, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.Equal(newName, account.Name)
			suite.Equal(domain.Asset, account.AccountType)
			suite.True(account.IsActive)
		}).
		Return(nil).Once()

	account, err := suite.service.UpdateAccount(context.Background(), suite.tenantID, accountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, account.Name)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParent() {
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, TenantID: suite.tenantID, AccountType: domain.Asset}

	suite.mockRepo.On("FindAccountByID", mock.Anything, suite.tenantID, accountID).Return(existing, nil).Once()

	_, err := suite.service.UpdateAccount(context.Background(), suite.tenantID, accountID, dto.UpdateAccountRequest{ParentAccountID: &accountID}, suite.userID)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "parentAccountID")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidTypeFilter() {
	_, err := suite.service.ListAccounts(context.Background(), suite.tenantID, dto.ListAccountsParams{Type: "GOODWILL"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	accountID := uuid.NewString()

	suite.mockRepo.On("DeactivateAccount", mock.Anything, suite.tenantID, accountID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(context.Background(), suite.tenantID, accountID, suite.userID)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockRepo.On("DeactivateAccount", mock.Anything, suite.tenantID, accountID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(context.Background(), suite.tenantID, accountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
