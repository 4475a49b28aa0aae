package usecase

import (
	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/service"
)

func planResponse(plan model.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:                    plan.ID(),
		OwnerID:               plan.OwnerID(),
		Description:           plan.Description(),
		TotalAmount:           plan.TotalAmount(),
		TotalInstallments:     plan.TotalInstallments(),
		MonthlyPayment:        plan.MonthlyPayment(),
		InterestRate:          plan.InterestRate(),
		StartDate:             plan.StartDate(),
		NextPaymentDate:       plan.NextPaymentDate(),
		RemainingInstallments: plan.RemainingInstallments(),
		Status:                plan.Status().String(),
		CategoryID:            plan.CategoryID(),
		CreatedAt:             plan.CreatedAt(),
		UpdatedAt:             plan.UpdatedAt(),
	}
}

func planResponses(plans []model.Plan) []dto.PlanResponse {
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse(p))
	}
	return out
}

func rateResponse(info service.RateInfo) dto.RateResponse {
	return dto.RateResponse{
		CategoryID:   info.CategoryID,
		CategoryName: info.CategoryName,
		Rate:         info.Rate,
		Explanation:  info.Explanation,
		Source:       info.Source,
		IsMarketRate: info.IsMarketRate,
	}
}
