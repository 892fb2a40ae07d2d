package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single product sale record from the seeded dataset.
// Records are immutable once seeded.
type Transaction struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale"`
	Image       string          `json:"image"`
}

// SaleMonth returns the calendar month of DateOfSale, evaluated in UTC.
func (t Transaction) SaleMonth() time.Month {
	return t.DateOfSale.UTC().Month()
}

// PriceText is the canonical textual form of the price used for search matching.
func (t Transaction) PriceText() string {
	return t.Price.String()
}

// Validate checks the record-level invariants.
func (t Transaction) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("transaction id is required")
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction %d: price must not be negative", t.ID)
	}
	if t.DateOfSale.IsZero() {
		return fmt.Errorf("transaction %d: dateOfSale is required", t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("transaction %d: title is required", t.ID)
	}
	return nil
}

// ValidateDataset validates every record and rejects duplicate ids.
func ValidateDataset(records []Transaction) error {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate transaction id %d", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
