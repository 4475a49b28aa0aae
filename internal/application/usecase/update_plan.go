package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/port"
	"github.com/finwallet/installment-service/internal/domain/service"
)

// UpdatePlanUseCase edits a plan's mutable attributes.
type UpdatePlanUseCase struct {
	planRepo     port.PlanRepository
	categoryRepo port.CategoryRepository
}

// NewUpdatePlanUseCase wires dependencies.
func NewUpdatePlanUseCase(
	planRepo port.PlanRepository,
	categoryRepo port.CategoryRepository,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute updates description, rate, next payment date and category. The
// monthly payment is never recalculated.
func (uc *UpdatePlanUseCase) Execute(
	ctx context.Context,
	req dto.UpdatePlanRequest,
) (dto.PlanResponse, error) {
	now := time.Now().UTC()

	if req.CategoryID != nil {
		id := *req.CategoryID
		if id <= 0 {
			return dto.PlanResponse{}, fault.Validationf("category id must be positive")
		}
		if !service.IsPredefinedCategory(id) {
			exists, err := uc.categoryRepo.Exists(ctx, req.OwnerID, id)
			if err != nil {
				return dto.PlanResponse{}, fmt.Errorf("check category: %w", err)
			}
			if !exists {
				return dto.PlanResponse{}, fault.NotFoundf("category %d not found", id)
			}
		}
	}

	plan, err := uc.planRepo.FindByID(ctx, req.OwnerID, req.PlanID)
	if err != nil {
		return dto.PlanResponse{}, fmt.Errorf("find plan: %w", err)
	}

	plan, err = plan.Update(req.Description, req.InterestRate, req.NextPaymentDate, req.CategoryID, now)
	if err != nil {
		return dto.PlanResponse{}, err
	}

	if err := uc.planRepo.Save(ctx, plan); err != nil {
		return dto.PlanResponse{}, fmt.Errorf("save plan: %w", err)
	}

	return planResponse(plan), nil
}
