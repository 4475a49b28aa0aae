package usecase

import (
	"context"
	"fmt"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/port"
)

// ListPlansUseCase lists an owner's installment plans.
type ListPlansUseCase struct {
	planRepo port.PlanRepository
}

// NewListPlansUseCase wires dependencies.
func NewListPlansUseCase(planRepo port.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

// Execute returns the owner's plans, optionally filtered to active ones.
func (uc *ListPlansUseCase) Execute(
	ctx context.Context,
	req dto.ListPlansRequest,
) ([]dto.PlanResponse, error) {
	var (
		plans []model.Plan
		err   error
	)
	if req.ActiveOnly {
		plans, err = uc.planRepo.FindActiveByOwner(ctx, req.OwnerID)
	} else {
		plans, err = uc.planRepo.FindByOwner(ctx, req.OwnerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return planResponses(plans), nil
}
