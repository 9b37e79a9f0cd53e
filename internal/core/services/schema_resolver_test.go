package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glsvc/ledger-backend/internal/core/domain"
	"github.com/glsvc/ledger-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SchemaResolverTestSuite struct {
	suite.Suite
	mockProbe *MockSchemaProbe
	tenantID  string
}

func (suite *SchemaResolverTestSuite) SetupTest() {
	suite.mockProbe = new(MockSchemaProbe)
	suite.tenantID = uuid.NewString()
}

func (suite *SchemaResolverTestSuite) resolve() (domain.LedgerSchema, error) {
	resolver := services.NewSchemaResolver(suite.mockProbe)
	return resolver.Resolve(context.Background(), suite.tenantID)
}

func (suite *SchemaResolverTestSuite) TestNormalizedWinsOverLegacy() {
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("JournalTablesExist", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasJournalData", mock.Anything, suite.tenantID).Return(true, nil)

	schema, err := suite.resolve()

	suite.NoError(err)
	suite.Equal(domain.SchemaNormalized, schema)
	// Higher-precedence generation short-circuits the legacy probes.
	suite.mockProbe.AssertNotCalled(suite.T(), "LegacyTableExists", mock.Anything)
}

func (suite *SchemaResolverTestSuite) TestEmptyJournalsFallThroughToLegacyWithChart() {
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("JournalTablesExist", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasJournalData", mock.Anything, suite.tenantID).Return(false, nil)
	suite.mockProbe.On("LegacyTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasLegacyData", mock.Anything, suite.tenantID).Return(true, nil)

	schema, err := suite.resolve()

	suite.NoError(err)
	suite.Equal(domain.SchemaLegacyAccounts, schema)
}

func (suite *SchemaResolverTestSuite) TestLegacyWithoutChartSynthesizes() {
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(false, nil)
	suite.mockProbe.On("JournalTablesExist", mock.Anything).Return(false, nil)
	suite.mockProbe.On("LegacyTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasLegacyData", mock.Anything, suite.tenantID).Return(true, nil)

	schema, err := suite.resolve()

	suite.NoError(err)
	suite.Equal(domain.SchemaLegacySynthesized, schema)
}

func (suite *SchemaResolverTestSuite) TestChartOnly() {
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("JournalTablesExist", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasJournalData", mock.Anything, suite.tenantID).Return(false, nil)
	suite.mockProbe.On("LegacyTableExists", mock.Anything).Return(true, nil)
	suite.mockProbe.On("HasLegacyData", mock.Anything, suite.tenantID).Return(false, nil)

	schema, err := suite.resolve()

	suite.NoError(err)
	suite.Equal(domain.SchemaAccountsOnly, schema)
}

func (suite *SchemaResolverTestSuite) TestNothingUsable() {
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(false, nil)
	suite.mockProbe.On("JournalTablesExist", mock.Anything).Return(false, nil)
	suite.mockProbe.On("LegacyTableExists", mock.Anything).Return(false, nil)

	schema, err := suite.resolve()

	suite.NoError(err)
	suite.Equal(domain.SchemaNone, schema)
}

func (suite *SchemaResolverTestSuite) TestProbeErrorPropagates() {
	probeErr := errors.New("connection refused")
	suite.mockProbe.On("AccountsTableExists", mock.Anything).Return(false, probeErr)

	schema, err := suite.resolve()

	suite.ErrorIs(err, probeErr)
	suite.Equal(domain.SchemaNone, schema)
}

func TestSchemaResolverTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaResolverTestSuite))
}
