package mapping

import (
	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/SscSPs/product_transactions/internal/models"
)

// ToModelTransaction converts a domain Transaction to a row model, filling the derived columns.
func ToModelTransaction(d domain.Transaction) models.ProductTransaction {
	return models.ProductTransaction{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		PriceText:   d.PriceText(),
		Category:    d.Category,
		Sold:        d.Sold,
		DateOfSale:  d.DateOfSale.UTC(),
		SaleMonth:   int(d.SaleMonth()),
		Image:       d.Image,
	}
}

// ToDomainTransaction converts a row model to a domain Transaction
func ToDomainTransaction(m models.ProductTransaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Sold:        m.Sold,
		DateOfSale:  m.DateOfSale.UTC(),
		Image:       m.Image,
	}
}

// ToModelTransactionSlice converts a slice of domain Transactions to row models
func ToModelTransactionSlice(ds []domain.Transaction) []models.ProductTransaction {
	out := make([]models.ProductTransaction, len(ds))
	for i, d := range ds {
		out[i] = ToModelTransaction(d)
	}
	return out
}

// ToDomainTransactionSlice converts a slice of row models to domain Transactions
func ToDomainTransactionSlice(ms []models.ProductTransaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
