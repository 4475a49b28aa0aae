package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	payment := MonthlyPayment(decimal.NewFromInt(1200), 12, decimal.Zero)
	assert.True(t, decimal.RequireFromString("100").Equal(payment), "got %s", payment)
}

func TestMonthlyPayment_Annuity(t *testing.T) {
	// 1000 over 12 months at 1.99% per month.
	payment := MonthlyPayment(decimal.NewFromInt(1000), 12, decimal.RequireFromString("1.99"))
	assert.True(t, decimal.RequireFromString("94.50").Equal(payment), "got %s", payment)
}

func TestMonthlyPayment_RoundsToTwoDecimals(t *testing.T) {
	payment := MonthlyPayment(decimal.NewFromInt(1000), 3, decimal.Zero)
	assert.True(t, decimal.RequireFromString("333.33").Equal(payment), "got %s", payment)
	assert.Equal(t, int32(-2), payment.Exponent())
}

func TestMonthlyPayment_InvalidInputs(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		installments int
		rate         decimal.Decimal
	}{
		{"zero amount", decimal.Zero, 12, decimal.NewFromInt(1)},
		{"negative amount", decimal.NewFromInt(-100), 12, decimal.NewFromInt(1)},
		{"zero installments", decimal.NewFromInt(1000), 0, decimal.NewFromInt(1)},
		{"negative installments", decimal.NewFromInt(1000), -3, decimal.NewFromInt(1)},
		{"negative rate", decimal.NewFromInt(1000), 12, decimal.NewFromInt(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.amount, tt.installments, tt.rate)
			assert.True(t, payment.IsZero(), "got %s", payment)
		})
	}
}

func TestTotalCost(t *testing.T) {
	total := TotalCost(decimal.NewFromInt(1000), 12, decimal.RequireFromString("1.99"))
	// 94.50 * 12
	assert.True(t, decimal.RequireFromString("1134.00").Equal(total), "got %s", total)
}
