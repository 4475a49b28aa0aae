package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// TransactionType – immutable value object
// ---------------------------------------------------------------------------

// TransactionType classifies a ledger transaction.
type TransactionType struct {
	value string
}

const (
	transactionTypeExpense = "EXPENSE"
	transactionTypeIncome  = "INCOME"
)

var (
	TransactionTypeExpense = TransactionType{value: transactionTypeExpense}
	TransactionTypeIncome  = TransactionType{value: transactionTypeIncome}
)

var validTransactionTypes = map[string]TransactionType{
	transactionTypeExpense: TransactionTypeExpense,
	transactionTypeIncome:  TransactionTypeIncome,
}

// NewTransactionType creates a TransactionType from a raw string.
func NewTransactionType(s string) (TransactionType, error) {
	v, ok := validTransactionTypes[s]
	if !ok {
		return TransactionType{}, fmt.Errorf("invalid transaction type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t TransactionType) String() string { return t.value }

// IsZero returns true when not initialised.
func (t TransactionType) IsZero() bool { return t.value == "" }

// Equal returns true when both types match.
func (t TransactionType) Equal(other TransactionType) bool { return t.value == other.value }
