package credit

import "math"

// MonthlyInstallment returns the fixed monthly payment of a reducing-balance
// loan. Degenerate terms yield +Inf, callers must check with IsDegenerate.
// The result is not rounded.
func MonthlyInstallment(principal, annualRatePercent float64, tenureMonths int) float64 {
	if tenureMonths == 0 {
		return math.Inf(1)
	}

	r := annualRatePercent / 100 / 12
	n := float64(tenureMonths)
	if r == 0 {
		return principal / n
	}

	// Negative exponent so long tenures underflow toward principal*r.
	denominator := 1 - math.Pow(1+r, -n)
	if denominator == 0 {
		return math.Inf(1)
	}

	return principal * r / denominator
}

func IsDegenerate(installment float64) bool {
	return math.IsInf(installment, 0) || math.IsNaN(installment)
}
