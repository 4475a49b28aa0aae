package usecase

import (
	"context"
	"fmt"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/port"
)

// GetPlanUseCase retrieves one installment plan.
type GetPlanUseCase struct {
	planRepo port.PlanRepository
}

// NewGetPlanUseCase wires dependencies.
func NewGetPlanUseCase(planRepo port.PlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

// Execute loads the plan, owner-scoped.
func (uc *GetPlanUseCase) Execute(
	ctx context.Context,
	req dto.GetPlanRequest,
) (dto.PlanResponse, error) {
	plan, err := uc.planRepo.FindByID(ctx, req.OwnerID, req.PlanID)
	if err != nil {
		return dto.PlanResponse{}, fmt.Errorf("find plan: %w", err)
	}
	return planResponse(plan), nil
}
