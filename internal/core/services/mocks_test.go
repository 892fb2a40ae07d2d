package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceAllTransactions(ctx context.Context, records []domain.Transaction) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// --- Mock DatasetSource ---
type MockDatasetSource struct {
	mock.Mock
}

func (m *MockDatasetSource) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock SeedEventPublisher ---
type MockSeedEventPublisher struct {
	mock.Mock
}

func (m *MockSeedEventPublisher) PublishSeeded(ctx context.Context, result domain.SeedResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func txn(id int64, price string, sold bool, category string, month time.Month) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Title:       "Product",
		Description: "A product",
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Sold:        sold,
		DateOfSale:  time.Date(2021, month, 27, 20, 29, 54, 0, time.UTC),
	}
}

func marchRecords() []domain.Transaction {
	return []domain.Transaction{
		txn(1, "329.85", true, "electronics", time.March),
		txn(2, "44.6", false, "men's clothing", time.March),
		txn(3, "55.99", true, "men's clothing", time.March),
		txn(4, "950", false, "electronics", time.March),
	}
}
