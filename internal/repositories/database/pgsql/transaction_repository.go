package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/product_transactions/internal/models"
	"github.com/SscSPs/product_transactions/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `SELECT id, title, description, price, category, sold, date_of_sale, image FROM product_transactions`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for product transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// FindTransactions retrieves every record matching the filter, ordered by id.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := whereClause(filter)
	return r.query(ctx, selectColumns+where+" ORDER BY id", args...)
}

// ListTransactions retrieves one page of matching records, ordered by id.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	where, args := whereClause(filter)
	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf("%s%s ORDER BY id LIMIT $%d OFFSET $%d", selectColumns, where, len(args)-1, len(args))
	return r.query(ctx, query, args...)
}

// CountTransactions counts the records matching the filter.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	where, args := whereClause(filter)
	var count int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM product_transactions"+where, args...).Scan(&count); err != nil {
		return 0, apperrors.StoreError("count transactions", err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.StoreError("query transactions", err)
	}
	defer rows.Close()

	records := []models.ProductTransaction{}
	for rows.Next() {
		var m models.ProductTransaction
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.Description,
			&m.Price,
			&m.Category,
			&m.Sold,
			&m.DateOfSale,
			&m.Image,
		)
		if err != nil {
			return nil, apperrors.StoreError("scan transaction row", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreError("iterate transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(records), nil
}

// ReplaceAllTransactions deletes every row and inserts records inside one
// database transaction, so concurrent readers keep seeing the old rows until commit.
func (r *PgxTransactionRepository) ReplaceAllTransactions(ctx context.Context, records []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op after a successful commit

	if _, err := tx.Exec(ctx, "DELETE FROM product_transactions"); err != nil {
		return storeAppError("failed to clear product transactions", err)
	}

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO product_transactions (id, title, description, price, price_text, category, sold, date_of_sale, sale_month, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, m := range mapping.ToModelTransactionSlice(records) {
		batch.Queue(insertQuery,
			m.ID,
			m.Title,
			m.Description,
			m.Price,
			m.PriceText,
			m.Category,
			m.Sold,
			m.DateOfSale,
			m.SaleMonth,
			m.Image,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return storeAppError("failed to insert product transactions", err)
	}

	return r.Commit(ctx, tx)
}
