package sqlite

import (
	"context"
	"strings"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/product_transactions/internal/models"
	"github.com/SscSPs/product_transactions/internal/utils/mapping"
	"gorm.io/gorm"
)

const insertBatchSize = 200

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormTransactionRepository stores product transactions through gorm.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository wraps an opened gorm connection.
func NewTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*GormTransactionRepository)(nil)

// filtered scopes a query to the filter. SQLite LIKE is case-insensitive for ASCII.
func (r *GormTransactionRepository) filtered(ctx context.Context, filter domain.TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.ProductTransaction{})
	if !filter.Month.IsAll() {
		q = q.Where("sale_month = ?", int(filter.Month))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where(`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR price_text LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern)
	}
	return q
}

// FindTransactions implements portsrepo.TransactionReader
func (r *GormTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var rows []models.ProductTransaction
	if err := r.filtered(ctx, filter).Order("id").Find(&rows).Error; err != nil {
		return nil, apperrors.StoreError("query transactions", err)
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

// ListTransactions implements portsrepo.TransactionReader
func (r *GormTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	var rows []models.ProductTransaction
	err := r.filtered(ctx, filter).
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.StoreError("list transactions", err)
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

// CountTransactions implements portsrepo.TransactionReader
func (r *GormTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, apperrors.StoreError("count transactions", err)
	}
	return int(count), nil
}

// ReplaceAllTransactions implements portsrepo.TransactionWriter inside a single gorm transaction.
func (r *GormTransactionRepository) ReplaceAllTransactions(ctx context.Context, records []domain.Transaction) error {
	rows := mapping.ToModelTransactionSlice(records)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ProductTransaction{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return apperrors.StoreError("replace transactions", err)
	}
	return nil
}

// NewRepositoryProvider opens dbPath and builds SQLite-backed repositories.
func NewRepositoryProvider(dbPath string) (portsrepo.RepositoryProvider, error) {
	db, err := Open(dbPath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(db),
		Close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
