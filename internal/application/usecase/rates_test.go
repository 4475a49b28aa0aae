package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/service"
)

func TestSuggestRate_Execute(t *testing.T) {
	uc := usecase.NewSuggestRateUseCase(service.NewRateAdvisor())

	resp := uc.Execute(context.Background(), dto.SuggestRateRequest{CategoryID: 29})
	assert.Equal(t, "Automotive", resp.CategoryName)
	assert.True(t, decimal.RequireFromString("0.99").Equal(resp.Rate))
	assert.True(t, resp.IsMarketRate)

	// Never fails, even for nonsense ids.
	resp = uc.Execute(context.Background(), dto.SuggestRateRequest{CategoryID: -7})
	assert.True(t, resp.Rate.IsZero())
}

func TestListRates_Execute(t *testing.T) {
	uc := usecase.NewListRatesUseCase(service.NewRateAdvisor())

	all := uc.Execute(context.Background())
	assert.Len(t, all, 10)
	assert.Contains(t, all, 26)
	assert.Contains(t, all, 35)
}

func TestCompareRate_Execute(t *testing.T) {
	uc := usecase.NewCompareRateUseCase(service.NewRateAdvisor())

	resp := uc.Execute(context.Background(), dto.CompareRateRequest{
		CategoryID: 26,
		UserRate:   decimal.RequireFromString("2.49"),
	})

	assert.False(t, resp.IsGoodDeal)
	assert.True(t, decimal.RequireFromString("0.5").Equal(resp.Difference), "got %s", resp.Difference)
	assert.NotEmpty(t, resp.Summary)
}
