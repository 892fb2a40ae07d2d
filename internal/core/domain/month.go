package domain

import "time"

// Month selects a calendar month (1=January .. 12=December). AllMonths disables month filtering.
type Month int

// AllMonths is the sentinel meaning "do not filter by month".
const AllMonths Month = 0

// Valid reports whether m is AllMonths or a calendar month.
func (m Month) Valid() bool {
	return m >= AllMonths && m <= 12
}

// IsAll reports whether m is the all-months sentinel.
func (m Month) IsAll() bool {
	return m == AllMonths
}

// Matches reports whether a sale on t falls in m. The month of t is taken in UTC, regardless of year.
func (m Month) Matches(t time.Time) bool {
	if m.IsAll() {
		return true
	}
	return t.UTC().Month() == time.Month(m)
}

// MatchesMonth reports whether the record was sold in the given month.
func MatchesMonth(record Transaction, m Month) bool {
	return m.Matches(record.DateOfSale)
}
