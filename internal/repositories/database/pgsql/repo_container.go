package pgsql

import (
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds PostgreSQL-backed repositories. Close shuts the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		Close: func() error {
			dbPool.Close()
			return nil
		},
	}
}
