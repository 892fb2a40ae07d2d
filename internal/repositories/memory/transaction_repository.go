package memory

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/product_transactions/internal/utils/aggregation"
)

// TransactionRepository keeps the dataset as an immutable snapshot.
// Readers load the current snapshot; ReplaceAllTransactions swaps in a new one,
// so a reader sees either the old dataset or the new one, never a mix.
type TransactionRepository struct {
	snapshot atomic.Pointer[[]domain.Transaction]
}

// NewTransactionRepository creates an empty in-memory repository.
func NewTransactionRepository() *TransactionRepository {
	r := &TransactionRepository{}
	empty := []domain.Transaction{}
	r.snapshot.Store(&empty)
	return r
}

// Ensure TransactionRepository implements the TransactionRepositoryFacade interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) load() []domain.Transaction {
	return *r.snapshot.Load()
}

// FindTransactions implements portsrepo.TransactionReader
func (r *TransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return aggregation.Filter(r.load(), filter), nil
}

// ListTransactions implements portsrepo.TransactionReader
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	matches, err := r.FindTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregation.Paginate(matches, page), nil
}

// CountTransactions implements portsrepo.TransactionReader
func (r *TransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count := 0
	for _, rec := range r.load() {
		if filter.Matches(rec) {
			count++
		}
	}
	return count, nil
}

// ReplaceAllTransactions implements portsrepo.TransactionWriter
func (r *TransactionRepository) ReplaceAllTransactions(ctx context.Context, records []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := slices.Clone(records)
	if next == nil {
		next = []domain.Transaction{}
	}
	slices.SortFunc(next, func(a, b domain.Transaction) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	r.snapshot.Store(&next)
	return nil
}

// NewRepositoryProvider wraps a fresh in-memory repository for the service container.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(),
		Close:           func() error { return nil },
	}
}
