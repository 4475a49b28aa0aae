package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/domain/valueobject"
)

// Transaction is the ledger record written for each installment payment.
type Transaction struct {
	id          string
	ownerID     string
	accountID   string
	planID      string
	description string
	amount      decimal.Decimal
	txType      valueobject.TransactionType
	categoryID  *int
	date        time.Time
	createdAt   time.Time
}

// NewPaymentTransaction builds the expense record for one installment payment
// against the given plan.
func NewPaymentTransaction(plan Plan, accountID string, paymentDate time.Time, notes string, now time.Time) Transaction {
	description := "Installment payment: " + plan.Description()
	if notes != "" {
		description += " (" + notes + ")"
	}

	return Transaction{
		id:          uuid.New().String(),
		ownerID:     plan.OwnerID(),
		accountID:   accountID,
		planID:      plan.ID(),
		description: description,
		amount:      plan.MonthlyPayment(),
		txType:      valueobject.TransactionTypeExpense,
		categoryID:  plan.CategoryID(),
		date:        paymentDate,
		createdAt:   now,
	}
}

// ReconstructTransaction rebuilds a Transaction from persistence.
func ReconstructTransaction(
	id, ownerID, accountID, planID, description string,
	amount decimal.Decimal,
	txType valueobject.TransactionType,
	categoryID *int,
	date, createdAt time.Time,
) Transaction {
	return Transaction{
		id:          id,
		ownerID:     ownerID,
		accountID:   accountID,
		planID:      planID,
		description: description,
		amount:      amount,
		txType:      txType,
		categoryID:  categoryID,
		date:        date,
		createdAt:   createdAt,
	}
}

func (t Transaction) ID() string                        { return t.id }
func (t Transaction) OwnerID() string                   { return t.ownerID }
func (t Transaction) AccountID() string                 { return t.accountID }
func (t Transaction) PlanID() string                    { return t.planID }
func (t Transaction) Description() string               { return t.description }
func (t Transaction) Amount() decimal.Decimal           { return t.amount }
func (t Transaction) Type() valueobject.TransactionType { return t.txType }
func (t Transaction) Date() time.Time                   { return t.date }
func (t Transaction) CreatedAt() time.Time              { return t.createdAt }

// CategoryID returns the optional category reference.
func (t Transaction) CategoryID() *int {
	if t.categoryID == nil {
		return nil
	}
	v := *t.categoryID
	return &v
}
