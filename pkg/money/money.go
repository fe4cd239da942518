package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// Round1 rounds a rating-style value to one decimal place.
func Round1(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}

// Pence converts a pound amount into integer minor units.
func Pence(value float64) int64 {
	return decimal.NewFromFloat(value).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
