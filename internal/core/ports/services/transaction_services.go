package services

import (
	"context"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transaction listings
type TransactionReaderSvc interface {
	// ListTransactions returns one page of records matching the month and search filters.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.TransactionPage, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
}

// SeedService replaces the stored dataset from the upstream source.
type SeedService interface {
	// Seed fetches the upstream dataset and replaces every stored record with it.
	Seed(ctx context.Context) (*domain.SeedResult, error)

	// SeedIfEmpty seeds only when the store holds no records and reports whether it did.
	SeedIfEmpty(ctx context.Context) (bool, error)
}
