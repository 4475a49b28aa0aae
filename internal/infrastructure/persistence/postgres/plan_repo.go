package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/valueobject"
	"github.com/finwallet/installment-service/pkg/postgres"
)

const planColumns = `
	id, owner_id, description, total_amount, total_installments,
	monthly_payment, interest_rate, start_date, next_payment_date,
	remaining_installments, status, category_id,
	version, created_at, updated_at
`

// PlanRepo implements port.PlanRepository. It works against a pool or a
// transaction, whichever Querier it is constructed with.
type PlanRepo struct {
	q postgres.Querier
}

// NewPlanRepo creates a new PostgreSQL-backed plan repository.
func NewPlanRepo(q postgres.Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Save persists a plan with an optimistic version guard.
func (r *PlanRepo) Save(ctx context.Context, plan model.Plan) error {
	query := `
		INSERT INTO installment_plans (
			id, owner_id, description, total_amount, total_installments,
			monthly_payment, interest_rate, start_date, next_payment_date,
			remaining_installments, status, category_id,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			description            = EXCLUDED.description,
			interest_rate          = EXCLUDED.interest_rate,
			next_payment_date      = EXCLUDED.next_payment_date,
			remaining_installments = EXCLUDED.remaining_installments,
			status                 = EXCLUDED.status,
			category_id            = EXCLUDED.category_id,
			version                = installment_plans.version + 1,
			updated_at             = EXCLUDED.updated_at
		WHERE installment_plans.version = $13
	`
	tag, err := r.q.Exec(ctx, query,
		plan.ID(), plan.OwnerID(), plan.Description(), plan.TotalAmount(), plan.TotalInstallments(),
		plan.MonthlyPayment(), plan.InterestRate(), plan.StartDate(), plan.NextPaymentDate(),
		plan.RemainingInstallments(), plan.Status().String(), plan.CategoryID(),
		plan.Version(), plan.CreatedAt(), plan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on plan")
	}
	return nil
}

// FindByID retrieves a plan by ID, owner-scoped.
func (r *PlanRepo) FindByID(ctx context.Context, ownerID, planID string) (model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE owner_id = $1 AND id = $2`
	return r.scanOnePlan(ctx, planID, query, ownerID, planID)
}

// FindByIDForUpdate locks the plan row for the enclosing transaction.
func (r *PlanRepo) FindByIDForUpdate(ctx context.Context, ownerID, planID string) (model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE owner_id = $1 AND id = $2 FOR UPDATE`
	return r.scanOnePlan(ctx, planID, query, ownerID, planID)
}

// FindByOwner retrieves all plans for an owner, newest first.
func (r *PlanRepo) FindByOwner(ctx context.Context, ownerID string) ([]model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.scanPlans(ctx, query, ownerID)
}

// FindActiveByOwner retrieves the owner's active plans, newest first.
func (r *PlanRepo) FindActiveByOwner(ctx context.Context, ownerID string) ([]model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE owner_id = $1 AND status = 'ACTIVE' ORDER BY created_at DESC`
	return r.scanPlans(ctx, query, ownerID)
}

// FindDue retrieves active plans across all owners with a payment due on or
// before asOf, most overdue first.
func (r *PlanRepo) FindDue(ctx context.Context, asOf time.Time) ([]model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE status = 'ACTIVE' AND next_payment_date <= $1 ORDER BY next_payment_date`
	return r.scanPlans(ctx, query, asOf)
}

// Delete removes a plan, owner-scoped.
func (r *PlanRepo) Delete(ctx context.Context, ownerID, planID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM installment_plans WHERE owner_id = $1 AND id = $2`, ownerID, planID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fault.NotFoundf("plan %s not found", planID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *PlanRepo) scanOnePlan(ctx context.Context, planID, query string, args ...any) (model.Plan, error) {
	plan, err := scanPlanRow(r.q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Plan{}, fault.NotFoundf("plan %s not found", planID)
	}
	if err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

func (r *PlanRepo) scanPlans(ctx context.Context, query string, args ...any) ([]model.Plan, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var plans []model.Plan
	for rows.Next() {
		plan, err := scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func scanPlanRow(s scannable) (model.Plan, error) {
	var (
		id, ownerID, description       string
		totalAmount                    decimal.Decimal
		totalInstallments              int
		monthlyPayment, interestRate   decimal.Decimal
		startDate, nextPaymentDate     time.Time
		remainingInstallments          int
		statusStr                      string
		categoryID                     *int
		version                        int
		createdAt, updatedAt           time.Time
	)

	err := s.Scan(
		&id, &ownerID, &description, &totalAmount, &totalInstallments,
		&monthlyPayment, &interestRate, &startDate, &nextPaymentDate,
		&remainingInstallments, &statusStr, &categoryID,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Plan{}, err
	}

	status, err := valueobject.NewPlanStatus(statusStr)
	if err != nil {
		return model.Plan{}, fmt.Errorf("parse plan status: %w", err)
	}

	return model.ReconstructPlan(
		id, ownerID, description,
		totalAmount, totalInstallments,
		monthlyPayment, interestRate,
		startDate, nextPaymentDate,
		remainingInstallments, status, categoryID,
		version, createdAt, updatedAt,
	), nil
}
