package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InstallmentPlan aggregate root
// ---------------------------------------------------------------------------

// Plan is an immutable aggregate. Mutations return a new copy.
type Plan struct {
	id                    string
	ownerID               string
	description           string
	totalAmount           decimal.Decimal
	totalInstallments     int
	monthlyPayment        decimal.Decimal
	interestRate          decimal.Decimal
	startDate             time.Time
	nextPaymentDate       time.Time
	remainingInstallments int
	status                valueobject.PlanStatus
	categoryID            *int
	version               int
	createdAt             time.Time
	updatedAt             time.Time
	domainEvents          []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewPlan creates an installment plan and derives the fixed monthly payment.
// The plan starts in ACTIVE status with all installments remaining; the first
// installment falls due one month after the start date.
func NewPlan(
	ownerID, description string,
	totalAmount decimal.Decimal,
	totalInstallments int,
	interestRate decimal.Decimal,
	firstPaymentDate time.Time,
	categoryID *int,
	now time.Time,
) (Plan, error) {
	if ownerID == "" {
		return Plan{}, fault.Validationf("owner ID is required")
	}
	if description == "" {
		return Plan{}, fault.Validationf("description is required")
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return Plan{}, fault.Validationf("total amount must be positive")
	}
	if totalInstallments <= 0 {
		return Plan{}, fault.Validationf("total installments must be positive")
	}
	if interestRate.IsNegative() {
		return Plan{}, fault.Validationf("interest rate cannot be negative")
	}
	if firstPaymentDate.IsZero() {
		return Plan{}, fault.Validationf("first payment date is required")
	}

	id := uuid.New().String()
	payment := MonthlyPayment(totalAmount, totalInstallments, interestRate)

	plan := Plan{
		id:                    id,
		ownerID:               ownerID,
		description:           description,
		totalAmount:           totalAmount,
		totalInstallments:     totalInstallments,
		monthlyPayment:        payment,
		interestRate:          interestRate,
		startDate:             firstPaymentDate,
		nextPaymentDate:       firstPaymentDate.AddDate(0, 1, 0),
		remainingInstallments: totalInstallments,
		status:                valueobject.PlanStatusActive,
		categoryID:            categoryID,
		version:               1,
		createdAt:             now,
		updatedAt:             now,
	}

	plan.domainEvents = append(plan.domainEvents, event.NewPlanCreated(
		id, ownerID, description, totalAmount, totalInstallments, interestRate, payment, firstPaymentDate,
	))

	return plan, nil
}

// ReconstructPlan rebuilds a Plan aggregate from persistence.
func ReconstructPlan(
	id, ownerID, description string,
	totalAmount decimal.Decimal,
	totalInstallments int,
	monthlyPayment, interestRate decimal.Decimal,
	startDate, nextPaymentDate time.Time,
	remainingInstallments int,
	status valueobject.PlanStatus,
	categoryID *int,
	version int,
	createdAt, updatedAt time.Time,
) Plan {
	return Plan{
		id:                    id,
		ownerID:               ownerID,
		description:           description,
		totalAmount:           totalAmount,
		totalInstallments:     totalInstallments,
		monthlyPayment:        monthlyPayment,
		interestRate:          interestRate,
		startDate:             startDate,
		nextPaymentDate:       nextPaymentDate,
		remainingInstallments: remainingInstallments,
		status:                status,
		categoryID:            categoryID,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyPayment consumes one installment: decrements the remaining count,
// advances the next payment date by exactly one month, and flips the plan to
// COMPLETED when no installments remain. The payment amount is always the
// fixed monthly payment.
func (p Plan) ApplyPayment(accountID string, now time.Time) (Plan, error) {
	if p.status.IsTerminal() {
		return p, fault.InvalidStatef("plan %s is already completed", p.id)
	}

	next := p
	next.remainingInstallments = p.remainingInstallments - 1
	if next.remainingInstallments < 0 {
		next.remainingInstallments = 0
	}
	next.nextPaymentDate = p.nextPaymentDate.AddDate(0, 1, 0)
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentApplied(
		p.id, p.ownerID, accountID, p.monthlyPayment, next.remainingInstallments, next.nextPaymentDate,
	))

	if next.remainingInstallments == 0 {
		next.status = valueobject.PlanStatusCompleted
		next.domainEvents = append(next.domainEvents, event.NewPlanCompleted(p.id, p.ownerID))
	}

	return next, nil
}

// Update edits the mutable plan attributes. The monthly payment is never
// recalculated: the payment was fixed when the plan was created, even when
// the stored rate changes.
func (p Plan) Update(
	description string,
	interestRate decimal.Decimal,
	nextPaymentDate time.Time,
	categoryID *int,
	now time.Time,
) (Plan, error) {
	if p.status.IsTerminal() {
		return p, fault.InvalidStatef("plan %s is already completed", p.id)
	}
	if description == "" {
		return p, fault.Validationf("description is required")
	}
	if interestRate.IsNegative() {
		return p, fault.Validationf("interest rate cannot be negative")
	}
	if nextPaymentDate.IsZero() {
		return p, fault.Validationf("next payment date is required")
	}

	next := p
	next.description = description
	next.interestRate = interestRate
	next.nextPaymentDate = nextPaymentDate
	next.categoryID = categoryID
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p Plan) ID() string                        { return p.id }
func (p Plan) OwnerID() string                   { return p.ownerID }
func (p Plan) Description() string               { return p.description }
func (p Plan) TotalAmount() decimal.Decimal      { return p.totalAmount }
func (p Plan) TotalInstallments() int            { return p.totalInstallments }
func (p Plan) MonthlyPayment() decimal.Decimal   { return p.monthlyPayment }
func (p Plan) InterestRate() decimal.Decimal     { return p.interestRate }
func (p Plan) StartDate() time.Time              { return p.startDate }
func (p Plan) NextPaymentDate() time.Time        { return p.nextPaymentDate }
func (p Plan) RemainingInstallments() int        { return p.remainingInstallments }
func (p Plan) Status() valueobject.PlanStatus    { return p.status }
func (p Plan) Version() int                      { return p.version }
func (p Plan) CreatedAt() time.Time              { return p.createdAt }
func (p Plan) UpdatedAt() time.Time              { return p.updatedAt }
func (p Plan) DomainEvents() []event.DomainEvent { return p.domainEvents }

// CategoryID returns the optional category reference.
func (p Plan) CategoryID() *int {
	if p.categoryID == nil {
		return nil
	}
	v := *p.categoryID
	return &v
}

// ClearEvents returns a copy with an empty event list.
func (p Plan) ClearEvents() Plan {
	next := p
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if src == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(src))
	copy(out, src)
	return out
}
