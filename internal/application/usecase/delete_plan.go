package usecase

import (
	"context"
	"fmt"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/port"
)

// DeletePlanUseCase removes a plan that has no payment history.
type DeletePlanUseCase struct {
	planRepo port.PlanRepository
	txnRepo  port.TransactionRepository
}

// NewDeletePlanUseCase wires dependencies.
func NewDeletePlanUseCase(
	planRepo port.PlanRepository,
	txnRepo port.TransactionRepository,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		txnRepo:  txnRepo,
	}
}

// Execute deletes the plan. Plans with recorded payments are kept for the
// ledger's sake.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, req dto.DeletePlanRequest) error {
	plan, err := uc.planRepo.FindByID(ctx, req.OwnerID, req.PlanID)
	if err != nil {
		return fmt.Errorf("find plan: %w", err)
	}

	hasPayments, err := uc.txnRepo.ExistsForPlan(ctx, plan.ID())
	if err != nil {
		return fmt.Errorf("check plan payments: %w", err)
	}
	if hasPayments {
		return fault.InvalidStatef("plan %s has existing payments", plan.ID())
	}

	if err := uc.planRepo.Delete(ctx, req.OwnerID, req.PlanID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
