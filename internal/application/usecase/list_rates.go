package usecase

import (
	"context"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/service"
)

// ListRatesUseCase returns the full market rate table.
type ListRatesUseCase struct {
	advisor *service.RateAdvisor
}

// NewListRatesUseCase wires dependencies.
func NewListRatesUseCase(advisor *service.RateAdvisor) *ListRatesUseCase {
	return &ListRatesUseCase{advisor: advisor}
}

// Execute returns every advised rate keyed by category id.
func (uc *ListRatesUseCase) Execute(_ context.Context) map[int]dto.RateResponse {
	all := uc.advisor.AllRates()
	out := make(map[int]dto.RateResponse, len(all))
	for id, info := range all {
		out[id] = rateResponse(info)
	}
	return out
}
