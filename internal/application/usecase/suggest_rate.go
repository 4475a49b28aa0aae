package usecase

import (
	"context"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/service"
)

// SuggestRateUseCase advises a market interest rate for a purchase category.
type SuggestRateUseCase struct {
	advisor *service.RateAdvisor
}

// NewSuggestRateUseCase wires dependencies.
func NewSuggestRateUseCase(advisor *service.RateAdvisor) *SuggestRateUseCase {
	return &SuggestRateUseCase{advisor: advisor}
}

// Execute never fails: unknown categories get a banded fallback.
func (uc *SuggestRateUseCase) Execute(_ context.Context, req dto.SuggestRateRequest) dto.RateResponse {
	return rateResponse(uc.advisor.SuggestRate(req.CategoryID))
}
