package repositories

import (
	"context"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// TransactionReader defines read operations for transaction records.
// Results are ordered by ascending transaction id.
type TransactionReader interface {
	// FindTransactions retrieves every record matching the filter.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of records matching the filter.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error)

	// CountTransactions counts the records matching the filter.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error)
}

// TransactionWriter defines write operations for transaction records.
type TransactionWriter interface {
	// ReplaceAllTransactions atomically swaps the stored dataset for records.
	ReplaceAllTransactions(ctx context.Context, records []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
