package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/port"
	"github.com/finwallet/installment-service/internal/domain/service"
)

// CreatePlanUseCase creates a new installment plan.
type CreatePlanUseCase struct {
	planRepo     port.PlanRepository
	categoryRepo port.CategoryRepository
	publisher    port.EventPublisher
	logger       *slog.Logger
}

// NewCreatePlanUseCase wires dependencies.
func NewCreatePlanUseCase(
	planRepo port.PlanRepository,
	categoryRepo port.CategoryRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute validates the category reference, creates the plan with its derived
// monthly payment and persists it.
func (uc *CreatePlanUseCase) Execute(
	ctx context.Context,
	req dto.CreatePlanRequest,
) (dto.PlanResponse, error) {
	now := time.Now().UTC()

	// 1. Validate the category reference. Ids inside the predefined catalog
	//    are always accepted; anything above must exist and belong to the
	//    caller.
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

	// 2. Build the aggregate.
	plan, err := model.NewPlan(
		req.OwnerID,
		req.Description,
		req.TotalAmount,
		req.TotalInstallments,
		req.InterestRate,
		req.FirstPaymentDate,
		req.CategoryID,
		now,
	)
	if err != nil {
		return dto.PlanResponse{}, err
	}

	// 3. Persist.
	if err := uc.planRepo.Save(ctx, plan); err != nil {
		return dto.PlanResponse{}, fmt.Errorf("save plan: %w", err)
	}

	// 4. Publish after the save. A broker failure must not report a persisted
	//    plan as failed, so it is logged and swallowed.
	if err := uc.publisher.Publish(ctx, plan.DomainEvents()...); err != nil {
		uc.logger.Error("publishing plan created event failed",
			"error", err,
			"plan_id", plan.ID(),
		)
	}

	return planResponse(plan), nil
}
