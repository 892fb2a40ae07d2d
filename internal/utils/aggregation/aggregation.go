package aggregation

import (
	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/shopspring/decimal"
)

var priceRangeIndex = func() map[string]int {
	idx := make(map[string]int, len(domain.PriceRangeLabels))
	for i, label := range domain.PriceRangeLabels {
		idx[label] = i
	}
	return idx
}()

// Filter returns the records matching f, preserving input order.
func Filter(records []domain.Transaction, f domain.TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns the slice of records covered by page. Pages past the end are empty.
func Paginate(records []domain.Transaction, page domain.PageRequest) []domain.Transaction {
	start := page.Offset()
	if start < 0 || start >= len(records) {
		return []domain.Transaction{}
	}
	end := min(start+page.Limit, len(records))
	return records[start:end]
}

// ComputeStatistics partitions records by sold flag and sums the price of sold ones.
// Used by both the statistics endpoint and the combined report.
func ComputeStatistics(records []domain.Transaction) domain.Statistics {
	stats := domain.Statistics{
		TotalCount: len(records),
		TotalSale:  decimal.Zero,
	}
	for _, r := range records {
		if r.Sold {
			stats.SoldCount++
			stats.TotalSale = stats.TotalSale.Add(r.Price)
		} else {
			stats.UnsoldCount++
		}
	}
	return stats
}

// ComputePriceRanges counts records per price bucket. Every bucket is present.
func ComputePriceRanges(records []domain.Transaction) domain.PriceRangeDistribution {
	dist := domain.NewPriceRangeDistribution()
	for _, r := range records {
		dist[priceRangeIndex[domain.PriceRangeFor(r.Price)]].Count++
	}
	return dist
}

// ComputeCategories counts records per category. Only observed categories appear.
func ComputeCategories(records []domain.Transaction) domain.CategoryDistribution {
	dist := make(domain.CategoryDistribution)
	for _, r := range records {
		dist[r.Category]++
	}
	return dist
}
