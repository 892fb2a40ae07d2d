package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// TransactionResponse is one product transaction as returned by the API.
type TransactionResponse struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Price       json.Number `json:"price" swaggertype:"number"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Sold        bool        `json:"sold"`
	DateOfSale  time.Time   `json:"dateOfSale"`
	Image       string      `json:"image"`
}

// ListTransactionsResponse is one page of the transaction listing.
type ListTransactionsResponse struct {
	Success      bool                  `json:"success"`
	TotalCount   int                   `json:"totalCount"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Month        int                   `json:"month"`
	Search       string                `json:"search"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
// Price is emitted as a bare JSON number in canonical decimal form.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Price:       json.Number(t.PriceText()),
		Description: t.Description,
		Category:    t.Category,
		Sold:        t.Sold,
		DateOfSale:  t.DateOfSale.UTC(),
		Image:       t.Image,
	}
}

// ToListTransactionsResponse converts a listing page to its API shape.
func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	items := make([]TransactionResponse, len(page.Transactions))
	for i, t := range page.Transactions {
		items[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{
		Success:      true,
		TotalCount:   page.TotalCount,
		Page:         page.Page,
		Limit:        page.Limit,
		Month:        int(page.Month),
		Search:       page.Search,
		Transactions: items,
	}
}
