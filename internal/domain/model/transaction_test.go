package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwallet/installment-service/internal/domain/valueobject"
	"github.com/finwallet/installment-service/pkg/testutil"
)

func TestNewPaymentTransaction(t *testing.T) {
	plan := newTestPlan(t, 12)
	paymentDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	txn := NewPaymentTransaction(plan, testutil.TestAccountID.String(), paymentDate, "", testNow)

	assert.NotEmpty(t, txn.ID())
	assert.Equal(t, plan.OwnerID(), txn.OwnerID())
	assert.Equal(t, plan.ID(), txn.PlanID())
	assert.Equal(t, "Installment payment: New laptop", txn.Description())
	assert.True(t, plan.MonthlyPayment().Equal(txn.Amount()))
	assert.True(t, txn.Type().Equal(valueobject.TransactionTypeExpense))
	assert.Equal(t, paymentDate, txn.Date())
}

func TestNewPaymentTransaction_WithNotes(t *testing.T) {
	plan := newTestPlan(t, 12)

	txn := NewPaymentTransaction(plan, testutil.TestAccountID.String(), testNow, "paid early", testNow)
	assert.Equal(t, "Installment payment: New laptop (paid early)", txn.Description())
}

func TestNewPaymentTransaction_CarriesPlanCategory(t *testing.T) {
	categoryID := 27
	plan, err := NewPlan(
		testutil.TestOwnerID1.String(), "Sofa", decimal.NewFromInt(800), 6,
		decimal.Zero, testFirstDate, &categoryID, testNow,
	)
	require.NoError(t, err)

	txn := NewPaymentTransaction(plan, testutil.TestAccountID.String(), testNow, "", testNow)
	require.NotNil(t, txn.CategoryID())
	assert.Equal(t, 27, *txn.CategoryID())
}
