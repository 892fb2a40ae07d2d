package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	priceRangeWidth = 100
	priceRangeCap   = 900
)

// PriceRangeLabels lists the bar chart buckets in display order.
var PriceRangeLabels = []string{
	"0-100",
	"101-200",
	"201-300",
	"301-400",
	"401-500",
	"501-600",
	"601-700",
	"701-800",
	"801-900",
	"901-above",
}

var hundred = decimal.NewFromInt(priceRangeWidth)

// PriceRangeFor maps a price to its bucket label.
// The upper bound of a bucket is ceil(price/100)*100; prices up to 100 (including 0)
// land in "0-100" and anything above 900 lands in "901-above".
func PriceRangeFor(price decimal.Decimal) string {
	upper := price.Div(hundred).Ceil().Mul(hundred).IntPart()
	switch {
	case upper <= priceRangeWidth:
		return PriceRangeLabels[0]
	case upper > priceRangeCap:
		return PriceRangeLabels[len(PriceRangeLabels)-1]
	default:
		return fmt.Sprintf("%d-%d", upper-priceRangeWidth+1, upper)
	}
}
