package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) expectMonth(month domain.Month, records []domain.Transaction) {
	suite.mockRepo.On("FindTransactions", mock.Anything, domain.TransactionFilter{Month: month}).Return(records, nil)
}

func (suite *ReportingServiceTestSuite) TestStatistics() {
	suite.expectMonth(3, marchRecords())

	stats, err := suite.service.Statistics(context.Background(), 3)

	suite.Require().NoError(err)
	suite.Equal(4, stats.TotalCount)
	suite.Equal(2, stats.SoldCount)
	suite.Equal(2, stats.UnsoldCount)
	suite.True(decimal.RequireFromString("385.84").Equal(stats.TotalSale), "got %s", stats.TotalSale)
}

func (suite *ReportingServiceTestSuite) TestStatistics_EmptyMonth() {
	suite.expectMonth(7, []domain.Transaction{})

	stats, err := suite.service.Statistics(context.Background(), 7)

	suite.Require().NoError(err)
	suite.Zero(stats.TotalCount)
	suite.True(stats.TotalSale.IsZero())
}

func (suite *ReportingServiceTestSuite) TestPriceRanges() {
	suite.expectMonth(3, marchRecords())

	dist, err := suite.service.PriceRanges(context.Background(), 3)

	suite.Require().NoError(err)
	suite.Len(dist, len(domain.PriceRangeLabels))
	suite.Equal(2, dist.Count("0-100"))
	suite.Equal(1, dist.Count("301-400"))
	suite.Equal(1, dist.Count("901-above"))
	suite.Equal(4, dist.Total())
}

func (suite *ReportingServiceTestSuite) TestCategories() {
	suite.expectMonth(3, marchRecords())

	dist, err := suite.service.Categories(context.Background(), 3)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryDistribution{"electronics": 2, "men's clothing": 2}, dist)
}

func (suite *ReportingServiceTestSuite) TestCombined_MatchesIndividualReports() {
	ctx := context.Background()
	suite.expectMonth(3, marchRecords())

	combined, err := suite.service.Combined(ctx, 3)
	suite.Require().NoError(err)

	stats, err := suite.service.Statistics(ctx, 3)
	suite.Require().NoError(err)
	ranges, err := suite.service.PriceRanges(ctx, 3)
	suite.Require().NoError(err)
	categories, err := suite.service.Categories(ctx, 3)
	suite.Require().NoError(err)

	suite.Equal(*stats, combined.Statistics)
	suite.Equal(ranges, combined.PriceRanges)
	suite.Equal(categories, combined.Categories)
}

func (suite *ReportingServiceTestSuite) TestCombined_StoreErrorFailsWholeReport() {
	suite.mockRepo.On("FindTransactions", mock.Anything, domain.TransactionFilter{Month: 3}).Return(nil, assert.AnError)

	combined, err := suite.service.Combined(context.Background(), 3)

	suite.Require().Error(err)
	suite.Nil(combined)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
