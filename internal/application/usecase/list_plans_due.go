package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/port"
)

// ListPlansDueUseCase lists active plans whose next payment is due. It feeds
// reminder jobs and scheduled-payment workers.
type ListPlansDueUseCase struct {
	planRepo port.PlanRepository
}

// NewListPlansDueUseCase wires dependencies.
func NewListPlansDueUseCase(planRepo port.PlanRepository) *ListPlansDueUseCase {
	return &ListPlansDueUseCase{planRepo: planRepo}
}

// Execute returns active plans across all owners with a payment due on or
// before the requested date. A zero AsOf means "due now".
func (uc *ListPlansDueUseCase) Execute(
	ctx context.Context,
	req dto.ListPlansDueRequest,
) ([]dto.PlanResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	plans, err := uc.planRepo.FindDue(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("list due plans: %w", err)
	}
	return planResponses(plans), nil
}
