package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new transaction listing service
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions returns the requested page together with the total match count.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.TransactionPage, error) {
	total, err := s.transactionRepo.CountTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions",
			slog.Int("month", int(filter.Month)),
			slog.String("search", filter.Search))
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	records := []domain.Transaction{}
	if page.Offset() < total {
		records, err = s.transactionRepo.ListTransactions(ctx, filter, page)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions",
				slog.Int("month", int(filter.Month)),
				slog.Int("page", page.Page),
				slog.Int("limit", page.Limit))
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.Int("month", int(filter.Month)),
		slog.Int("total_count", total),
		slog.Int("returned", len(records)))

	return &domain.TransactionPage{
		TotalCount:   total,
		Page:         page.Page,
		Limit:        page.Limit,
		Month:        filter.Month,
		Search:       filter.Search,
		Transactions: records,
	}, nil
}
