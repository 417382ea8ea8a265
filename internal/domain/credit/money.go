package credit

import (
	"math"

	"github.com/shopspring/decimal"
)

const limitUnit = 100_000

// RoundMoney rounds an amount to cents, half away from zero.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// ApprovedLimit derives a customer's exposure limit from monthly income:
// 36 months of income rounded to the nearest 100,000, ties to even.
func ApprovedLimit(monthlyIncome float64) int64 {
	units := math.RoundToEven(36 * monthlyIncome / limitUnit)
	return int64(units) * limitUnit
}
