package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Statistics summarises sales for a month.
type Statistics struct {
	TotalCount  int
	TotalSale   decimal.Decimal // Sum of prices of sold records.
	SoldCount   int
	UnsoldCount int
}

// PriceRangeCount is one bar of the price-range chart.
type PriceRangeCount struct {
	Label string
	Count int
}

// PriceRangeDistribution holds counts for every label in PriceRangeLabels, in order.
type PriceRangeDistribution []PriceRangeCount

// NewPriceRangeDistribution returns a distribution with every label at zero.
func NewPriceRangeDistribution() PriceRangeDistribution {
	d := make(PriceRangeDistribution, len(PriceRangeLabels))
	for i, label := range PriceRangeLabels {
		d[i] = PriceRangeCount{Label: label}
	}
	return d
}

// Count returns the count stored for label.
func (d PriceRangeDistribution) Count(label string) int {
	for _, c := range d {
		if c.Label == label {
			return c.Count
		}
	}
	return 0
}

// Total returns the sum of all bucket counts.
func (d PriceRangeDistribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}

// MarshalJSON encodes the distribution as a JSON object whose keys keep bucket order.
func (d PriceRangeDistribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of label counts back into bucket order.
// Unknown labels are ignored.
func (d *PriceRangeDistribution) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := NewPriceRangeDistribution()
	for i := range out {
		out[i].Count = raw[out[i].Label]
	}
	*d = out
	return nil
}

// CategoryDistribution counts records per observed category.
type CategoryDistribution map[string]int

// CombinedReport bundles the three month aggregates.
type CombinedReport struct {
	Statistics  Statistics
	PriceRanges PriceRangeDistribution
	Categories  CategoryDistribution
}

// TransactionPage is one page of a filtered listing.
type TransactionPage struct {
	TotalCount   int
	Page         int
	Limit        int
	Month        Month
	Search       string
	Transactions []Transaction
}

// SeedResult describes a completed dataset replacement.
type SeedResult struct {
	Count    int
	SeededAt time.Time
}
