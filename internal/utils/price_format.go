package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimals used when rendering sale totals.
const MoneyPrecision = 2

// FormatWithPrecision formats an amount with exactly precision decimals.
// Example: 12.3 with precision 2 returns "12.30"
// Example: 12.345 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney formats an amount using MoneyPrecision.
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPrecision)
}
