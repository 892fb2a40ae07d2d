package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/core/services"
	"github.com/SscSPs/product_transactions/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var seededAt = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

type SeedServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockTransactionRepository
	mockSource    *MockDatasetSource
	mockPublisher *MockSeedEventPublisher
	service       portssvc.SeedService
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockSource = new(MockDatasetSource)
	suite.mockPublisher = new(MockSeedEventPublisher)
	suite.service = services.NewSeedService(suite.mockSource, suite.mockRepo,
		services.WithSeedEventPublisher(suite.mockPublisher),
		services.WithSeedClock(func() time.Time { return seededAt }))
}

func (suite *SeedServiceTestSuite) TestSeed_Success() {
	ctx := context.Background()
	records := marchRecords()
	expected := domain.SeedResult{Count: len(records), SeededAt: seededAt}

	suite.mockSource.On("FetchTransactions", ctx).Return(records, nil).Once()
	suite.mockRepo.On("ReplaceAllTransactions", ctx, records).Return(nil).Once()
	suite.mockPublisher.On("PublishSeeded", ctx, expected).Return(nil).Once()

	result, err := suite.service.Seed(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, *result)
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *SeedServiceTestSuite) TestSeed_FetchErrorLeavesStoreUntouched() {
	ctx := context.Background()
	fetchErr := apperrors.NewAppError(502, "upstream unavailable", apperrors.ErrUpstreamFetch)

	suite.mockSource.On("FetchTransactions", ctx).Return(nil, fetchErr).Once()

	result, err := suite.service.Seed(ctx)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUpstreamFetch)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceAllTransactions", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishSeeded", mock.Anything, mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeed_InvalidDatasetRejected() {
	ctx := context.Background()
	records := append(marchRecords(), marchRecords()[0])

	suite.mockSource.On("FetchTransactions", ctx).Return(records, nil).Once()

	result, err := suite.service.Seed(ctx)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "duplicate transaction id 1")
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceAllTransactions", mock.Anything, mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeed_StoreError() {
	ctx := context.Background()
	records := marchRecords()

	suite.mockSource.On("FetchTransactions", ctx).Return(records, nil).Once()
	suite.mockRepo.On("ReplaceAllTransactions", ctx, records).Return(apperrors.StoreError("replace", assert.AnError)).Once()

	result, err := suite.service.Seed(ctx)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrStore)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishSeeded", mock.Anything, mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeed_PublishFailureDoesNotFailSeed() {
	ctx := context.Background()
	records := marchRecords()

	suite.mockSource.On("FetchTransactions", ctx).Return(records, nil).Once()
	suite.mockRepo.On("ReplaceAllTransactions", ctx, records).Return(nil).Once()
	suite.mockPublisher.On("PublishSeeded", ctx, mock.AnythingOfType("domain.SeedResult")).Return(assert.AnError).Once()

	result, err := suite.service.Seed(ctx)

	suite.Require().NoError(err)
	suite.Equal(len(records), result.Count)
}

func (suite *SeedServiceTestSuite) TestSeedIfEmpty_SkipsPopulatedStore() {
	ctx := context.Background()

	suite.mockRepo.On("CountTransactions", ctx, domain.TransactionFilter{Month: domain.AllMonths}).Return(60, nil).Once()

	seeded, err := suite.service.SeedIfEmpty(ctx)

	suite.Require().NoError(err)
	suite.False(seeded)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchTransactions", mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeedIfEmpty_SeedsEmptyStore() {
	ctx := context.Background()
	records := marchRecords()

	suite.mockRepo.On("CountTransactions", ctx, domain.TransactionFilter{Month: domain.AllMonths}).Return(0, nil).Once()
	suite.mockSource.On("FetchTransactions", ctx).Return(records, nil).Once()
	suite.mockRepo.On("ReplaceAllTransactions", ctx, records).Return(nil).Once()
	suite.mockPublisher.On("PublishSeeded", ctx, mock.AnythingOfType("domain.SeedResult")).Return(nil).Once()

	seeded, err := suite.service.SeedIfEmpty(ctx)

	suite.Require().NoError(err)
	suite.True(seeded)
}

func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}

func TestSeed_TwiceDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	source := new(MockDatasetSource)
	source.On("FetchTransactions", mock.Anything).Return(marchRecords(), nil)
	svc := services.NewSeedService(source, repo)

	_, err := svc.Seed(ctx)
	assert.NoError(t, err)
	_, err = svc.Seed(ctx)
	assert.NoError(t, err)

	count, err := repo.CountTransactions(ctx, domain.TransactionFilter{Month: domain.AllMonths})
	assert.NoError(t, err)
	assert.Equal(t, len(marchRecords()), count)
}
