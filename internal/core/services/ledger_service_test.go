package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockReader *MockLedgerReader
	service    portssvc.LedgerService
	tenantID   string
	from       time.Time
	to         time.Time
	cash       domain.LedgerAccount
	sales      domain.LedgerAccount
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockReader = &MockLedgerReader{schema: domain.SchemaNormalized}
	suite.service = services.NewLedgerService(
		&stubSchemaResolver{schema: domain.SchemaNormalized},
		&stubReaderFactory{reader: suite.mockReader},
	)

	suite.tenantID = uuid.NewString()
	suite.from = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.cash = domain.LedgerAccount{
		Ref:      domain.RealAccount(uuid.NewString()),
		Code:     "1000",
		Name:     "Cash",
		Type:     domain.Asset,
		IsActive: true,
	}
	suite.sales = domain.LedgerAccount{
		Ref:      domain.RealAccount(uuid.NewString()),
		Code:     "4000",
		Name:     "Sales",
		Type:     domain.Revenue,
		IsActive: true,
	}
}

func (suite *LedgerServiceTestSuite) TestRunningBalanceReplay() {
	accounts := []domain.LedgerAccount{suite.cash, suite.sales}
	opening := decimal.NewFromFloat(100.005)
	entries := []domain.LedgerLine{
		{Date: suite.from, Debit: decimal.NewFromFloat(50.004)},
		{Date: suite.from.AddDate(0, 0, 3), Credit: decimal.NewFromFloat(30.10)},
		{Date: suite.from.AddDate(0, 0, 9), Debit: decimal.NewFromFloat(0.01)},
	}

	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).Return(accounts, nil)
	suite.mockReader.On("OpeningBalance", mock.Anything, suite.tenantID, suite.cash.Ref, suite.from).Return(opening, nil)
	suite.mockReader.On("AccountEntries", mock.Anything, suite.tenantID, suite.cash.Ref, suite.from, suite.to).Return(entries, nil)

	ledger, err := suite.service.ReadAccountLedger(context.Background(), suite.tenantID, suite.cash.Ref, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.SchemaNormalized, ledger.Schema)
	suite.Require().NotNil(ledger.Account)
	suite.Equal("1000", ledger.Account.Code)
	// Opening is rounded once, then the balance is re-rounded after each step.
	suite.Equal("100.01", ledger.OpeningBalance.StringFixed(2))
	suite.Require().Len(ledger.Entries, 3)
	suite.Equal("150.01", ledger.Entries[0].RunningBalance.StringFixed(2))
	suite.Equal("119.91", ledger.Entries[1].RunningBalance.StringFixed(2))
	suite.Equal("119.92", ledger.Entries[2].RunningBalance.StringFixed(2))
}

func (suite *LedgerServiceTestSuite) TestDefaultsToFirstAccount() {
	accounts := []domain.LedgerAccount{suite.cash, suite.sales}

	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).Return(accounts, nil)
	suite.mockReader.On("OpeningBalance", mock.Anything, suite.tenantID, suite.cash.Ref, suite.from).Return(decimal.Zero, nil)
	suite.mockReader.On("AccountEntries", mock.Anything, suite.tenantID, suite.cash.Ref, suite.from, suite.to).Return([]domain.LedgerLine{}, nil)

	ledger, err := suite.service.ReadAccountLedger(context.Background(), suite.tenantID, domain.AccountRef{}, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(suite.cash.Ref, ledger.Account.Ref)
}

func (suite *LedgerServiceTestSuite) TestSelectByCode() {
	accounts := []domain.LedgerAccount{suite.cash, suite.sales}

	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).Return(accounts, nil)
	suite.mockReader.On("OpeningBalance", mock.Anything, suite.tenantID, suite.sales.Ref, suite.from).Return(decimal.Zero, nil)
	suite.mockReader.On("AccountEntries", mock.Anything, suite.tenantID, suite.sales.Ref, suite.from, suite.to).Return([]domain.LedgerLine{}, nil)

	ledger, err := suite.service.ReadAccountLedger(context.Background(), suite.tenantID, domain.SyntheticAccount("4000"), suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal("Sales", ledger.Account.Name)
}

func (suite *LedgerServiceTestSuite) TestUnknownAccount() {
	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).
		Return([]domain.LedgerAccount{suite.cash}, nil)

	_, err := suite.service.ReadAccountLedger(context.Background(), suite.tenantID, domain.RealAccount(uuid.NewString()), suite.from, suite.to)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestEmptyTenantGetsEmptyLedger() {
	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).
		Return([]domain.LedgerAccount{}, nil)

	ledger, err := suite.service.ReadAccountLedger(context.Background(), suite.tenantID, domain.AccountRef{}, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Nil(ledger.Account)
	suite.Empty(ledger.Entries)
	suite.mockReader.AssertNotCalled(suite.T(), "OpeningBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListLedgerAccounts() {
	accounts := []domain.LedgerAccount{suite.cash, suite.sales}
	suite.mockReader.On("ListLedgerAccounts", mock.Anything, suite.tenantID).Return(accounts, nil)

	schema, got, err := suite.service.ListLedgerAccounts(context.Background(), suite.tenantID)

	suite.Require().NoError(err)
	suite.Equal(domain.SchemaNormalized, schema)
	suite.Len(got, 2)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
