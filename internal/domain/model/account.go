package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/domain/fault"
)

// Account is the slice of the wallet account the payment engine touches: a
// balance that can be debited. It is an immutable aggregate like Plan.
type Account struct {
	id        string
	ownerID   string
	name      string
	balance   decimal.Decimal
	version   int
	updatedAt time.Time
}

// ReconstructAccount rebuilds an Account from persistence.
func ReconstructAccount(id, ownerID, name string, balance decimal.Decimal, version int, updatedAt time.Time) Account {
	return Account{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		balance:   balance,
		version:   version,
		updatedAt: updatedAt,
	}
}

// Debit withdraws amount from the balance. Fails with an insufficient-funds
// fault carrying the requested and available amounts when the balance cannot
// cover the withdrawal.
func (a Account) Debit(amount decimal.Decimal, now time.Time) (Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return a, fault.Validationf("debit amount must be positive")
	}
	if a.balance.LessThan(amount) {
		return a, fault.InsufficientFunds(amount, a.balance)
	}

	next := a
	next.balance = a.balance.Sub(amount)
	next.updatedAt = now
	return next, nil
}

func (a Account) ID() string               { return a.id }
func (a Account) OwnerID() string          { return a.ownerID }
func (a Account) Name() string             { return a.name }
func (a Account) Balance() decimal.Decimal { return a.balance }
func (a Account) Version() int             { return a.version }
func (a Account) UpdatedAt() time.Time     { return a.updatedAt }
