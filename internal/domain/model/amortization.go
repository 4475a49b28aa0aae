package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment computes the fixed installment payment for a financed
// purchase using the standard annuity formula.
//
// Parameters:
//   - totalAmount:        the financed amount
//   - installments:       number of monthly periods
//   - monthlyRatePercent: interest rate per month, in percent (e.g. 1.99)
//
// The calculation uses:
//
//	r       = monthlyRatePercent / 100
//	payment = A * r * (1+r)^n / ((1+r)^n - 1)
//
// The result is rounded to 2 decimal places, half away from zero. Invalid
// inputs (non-positive amount or term, negative rate) yield zero.
func MonthlyPayment(totalAmount decimal.Decimal, installments int, monthlyRatePercent decimal.Decimal) decimal.Decimal {
	if installments <= 0 || totalAmount.LessThanOrEqual(decimal.Zero) || monthlyRatePercent.IsNegative() {
		return decimal.Zero
	}

	if monthlyRatePercent.IsZero() {
		// Zero-interest: even split.
		return totalAmount.Div(decimal.NewFromInt(int64(installments))).Round(2)
	}

	// Percent to a monthly decimal rate; float64 for the power calculation,
	// decimal for the final monetary rounding.
	monthlyRate := monthlyRatePercent.InexactFloat64() / 100.0
	n := float64(installments)

	// A * r * (1+r)^n / ((1+r)^n - 1)
	factor := math.Pow(1+monthlyRate, n)
	paymentFloat := totalAmount.InexactFloat64() * monthlyRate * factor / (factor - 1)

	return decimal.NewFromFloat(paymentFloat).Round(2)
}

// TotalCost returns the full amount paid over the life of the plan.
func TotalCost(totalAmount decimal.Decimal, installments int, monthlyRatePercent decimal.Decimal) decimal.Decimal {
	payment := MonthlyPayment(totalAmount, installments, monthlyRatePercent)
	return payment.Mul(decimal.NewFromInt(int64(installments)))
}
