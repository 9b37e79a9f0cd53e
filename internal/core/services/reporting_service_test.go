package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReader *MockLedgerReader
	service    portssvc.ReportingService
	tenantID   string
	from       time.Time
	to         time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReader = &MockLedgerReader{schema: domain.SchemaNormalized}
	suite.service = services.NewReportingService(
		&stubSchemaResolver{schema: domain.SchemaNormalized},
		&stubReaderFactory{reader: suite.mockReader},
	)

	suite.tenantID = uuid.NewString()
	suite.from = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) activity(code, name string, t domain.AccountType, opening, debit, credit float64) domain.AccountActivity {
	return domain.AccountActivity{
		Ref:          domain.RealAccount(uuid.NewString()),
		Code:         code,
		Name:         name,
		Type:         t,
		OpeningNet:   decimal.NewFromFloat(opening),
		PeriodDebit:  decimal.NewFromFloat(debit),
		PeriodCredit: decimal.NewFromFloat(credit),
	}
}

// A cash sale plus a rent payment: the three reports must agree with each
// other on the same underlying activity.
func (suite *ReportingServiceTestSuite) tradingActivities() []domain.AccountActivity {
	return []domain.AccountActivity{
		suite.activity("1000", "Cash", domain.Asset, 0, 1000, 700),
		suite.activity("4000", "Sales", domain.Revenue, 0, 0, 1000),
		suite.activity("6100", "Rent", domain.Expense, 0, 700, 0),
		suite.activity("3000", "Owner Capital", domain.Equity, 0, 0, 0),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return(suite.tradingActivities(), nil)

	report, err := suite.service.TrialBalance(context.Background(), suite.tenantID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.SchemaNormalized, report.Schema)
	suite.False(report.ShowingAll)
	// The quiet equity account is filtered out.
	suite.Require().Len(report.Rows, 3)

	cash := report.Rows[0]
	suite.Equal("1000", cash.AccountCode)
	suite.Equal("0", cash.OpeningDebit.String())
	suite.Equal("300", cash.ClosingDebit.String())
	suite.Equal("0", cash.ClosingCredit.String())

	sales := report.Rows[1]
	suite.Equal("0", sales.ClosingDebit.String())
	suite.Equal("1000", sales.ClosingCredit.String())

	suite.Equal("1700", report.Totals.PeriodDebit.String())
	suite.Equal("1700", report.Totals.PeriodCredit.String())
	suite.True(report.Totals.ClosingDebit.Equal(report.Totals.ClosingCredit))
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceQuietPeriodShowsAll() {
	activities := []domain.AccountActivity{
		suite.activity("1000", "Cash", domain.Asset, 0, 0, 0),
		suite.activity("4000", "Sales", domain.Revenue, 0, 0, 0),
	}
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return(activities, nil)

	report, err := suite.service.TrialBalance(context.Background(), suite.tenantID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.ShowingAll)
	suite.Len(report.Rows, 2)
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceCSV() {
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return(suite.tradingActivities(), nil)

	data, err := suite.service.TrialBalanceCSV(context.Background(), suite.tenantID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")))
	suite.Contains(string(data), "Sales")
	suite.Contains(string(data), "Totals")
}

func (suite *ReportingServiceTestSuite) TestBalanceSheetFoldsProfitIntoRetainedEarnings() {
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.to, suite.to).
		Return(suite.tradingActivities(), nil)

	report, err := suite.service.BalanceSheet(context.Background(), suite.tenantID, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets, 1)
	suite.Equal("300", report.TotalAssets.String())
	suite.Equal("0", report.TotalLiabilities.String())
	// 1000 revenue less 700 rent closes into equity as 300 profit.
	suite.Equal("300", report.RetainedEarnings.String())
	suite.Equal("300", report.TotalEquity.String())
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheetFlagsUnbalancedData() {
	activities := []domain.AccountActivity{
		suite.activity("1000", "Cash", domain.Asset, 0, 500, 0),
		suite.activity("2000", "Loans", domain.Liability, 0, 0, 450),
	}
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.to, suite.to).
		Return(activities, nil)

	report, err := suite.service.BalanceSheet(context.Background(), suite.tenantID, suite.to)

	suite.Require().NoError(err)
	suite.Equal("500", report.TotalAssets.String())
	suite.Equal("450", report.TotalLiabilities.String())
	suite.False(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return(suite.tradingActivities(), nil)
	suite.mockReader.On("DailyMovements", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return([]domain.DailyMovement{
			{Date: suite.from, Type: domain.Revenue, Credit: decimal.NewFromInt(1000)},
			{Date: suite.from.AddDate(0, 0, 2), Type: domain.Expense, Debit: decimal.NewFromInt(700)},
		}, nil)

	report, err := suite.service.ProfitAndLoss(context.Background(), suite.tenantID, suite.from, suite.to, false)

	suite.Require().NoError(err)
	suite.False(report.ShowingAll)
	// Only the revenue and expense accounts with movement survive the filter.
	suite.Require().Len(report.Rows, 2)
	suite.Equal("1000", report.TotalIncome.String())
	suite.Equal("700", report.TotalExpense.String())
	suite.Equal("300", report.NetProfit.String())

	// Dense series: one point per day in March, gaps at zero.
	suite.Require().Len(report.Daily, 31)
	suite.Equal("1000", report.Daily[0].Net.String())
	suite.Equal("0", report.Daily[1].Net.String())
	suite.Equal("700", report.Daily[2].Net.String())
	suite.Equal("0", report.Daily[30].Net.String())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossIncludeAll() {
	suite.mockReader.On("BalanceActivity", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return(suite.tradingActivities(), nil)
	suite.mockReader.On("DailyMovements", mock.Anything, suite.tenantID, suite.from, suite.to).
		Return([]domain.DailyMovement{}, nil)

	report, err := suite.service.ProfitAndLoss(context.Background(), suite.tenantID, suite.from, suite.to, true)

	suite.Require().NoError(err)
	suite.True(report.ShowingAll)
	// Every account appears, including the asset and equity rows at zero.
	suite.Len(report.Rows, 4)
	suite.Equal("300", report.NetProfit.String())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
