package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Installment Plan Events
// ---------------------------------------------------------------------------

// PlanCreated is raised when a new installment plan enters the system.
type PlanCreated struct {
	events.BaseEvent
	OwnerID            string          `json:"owner_id"`
	Description        string          `json:"description"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Installments       int             `json:"installments"`
	MonthlyRatePercent decimal.Decimal `json:"monthly_rate_percent"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	FirstPaymentDate   time.Time       `json:"first_payment_date"`
}

func NewPlanCreated(
	planID, ownerID, description string,
	totalAmount decimal.Decimal,
	installments int,
	monthlyRatePercent, monthlyPayment decimal.Decimal,
	firstPaymentDate time.Time,
) PlanCreated {
	return PlanCreated{
		BaseEvent:          events.NewBaseEvent("installments.plan.created", planID, "InstallmentPlan"),
		OwnerID:            ownerID,
		Description:        description,
		TotalAmount:        totalAmount,
		Installments:       installments,
		MonthlyRatePercent: monthlyRatePercent,
		MonthlyPayment:     monthlyPayment,
		FirstPaymentDate:   firstPaymentDate,
	}
}

// PaymentApplied is raised when an installment payment is applied to a plan.
type PaymentApplied struct {
	events.BaseEvent
	OwnerID               string          `json:"owner_id"`
	AccountID             string          `json:"account_id"`
	AmountPaid            decimal.Decimal `json:"amount_paid"`
	RemainingInstallments int             `json:"remaining_installments"`
	NextPaymentDate       time.Time       `json:"next_payment_date"`
}

func NewPaymentApplied(
	planID, ownerID, accountID string,
	amountPaid decimal.Decimal,
	remainingInstallments int,
	nextPaymentDate time.Time,
) PaymentApplied {
	return PaymentApplied{
		BaseEvent:             events.NewBaseEvent("installments.plan.payment_processed", planID, "InstallmentPlan"),
		OwnerID:               ownerID,
		AccountID:             accountID,
		AmountPaid:            amountPaid,
		RemainingInstallments: remainingInstallments,
		NextPaymentDate:       nextPaymentDate,
	}
}

// PlanCompleted is raised when the final installment has been paid.
type PlanCompleted struct {
	events.BaseEvent
	OwnerID string `json:"owner_id"`
}

func NewPlanCompleted(planID, ownerID string) PlanCompleted {
	return PlanCompleted{
		BaseEvent: events.NewBaseEvent("installments.plan.completed", planID, "InstallmentPlan"),
		OwnerID:   ownerID,
	}
}
