package domain

import "strings"

// MatchesSearch reports whether query is a case-insensitive substring of the
// record's title, description or price text. An empty query matches everything.
func MatchesSearch(record Transaction, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(record.Title), q) ||
		strings.Contains(strings.ToLower(record.Description), q) ||
		strings.Contains(record.PriceText(), q)
}

// TransactionFilter describes which records a query selects.
type TransactionFilter struct {
	Month  Month
	Search string
}

// Matches applies the month and search filters together.
func (f TransactionFilter) Matches(record Transaction) bool {
	return MatchesMonth(record, f.Month) && MatchesSearch(record, f.Search)
}

// PageRequest is a 1-based page with a fixed page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of records skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
