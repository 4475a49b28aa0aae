package usecase

import (
	"context"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/service"
)

// CompareRateUseCase compares a user's financing rate against the market.
type CompareRateUseCase struct {
	advisor *service.RateAdvisor
}

// NewCompareRateUseCase wires dependencies.
func NewCompareRateUseCase(advisor *service.RateAdvisor) *CompareRateUseCase {
	return &CompareRateUseCase{advisor: advisor}
}

// Execute never fails.
func (uc *CompareRateUseCase) Execute(_ context.Context, req dto.CompareRateRequest) dto.RateComparisonResponse {
	cmp := uc.advisor.CompareWithMarket(req.CategoryID, req.UserRate)
	return dto.RateComparisonResponse{
		CategoryID:   cmp.CategoryID,
		CategoryName: cmp.CategoryName,
		MarketRate:   cmp.MarketRate,
		UserRate:     cmp.UserRate,
		Difference:   cmp.Difference,
		IsGoodDeal:   cmp.IsGoodDeal,
		Summary:      cmp.Summary,
	}
}
