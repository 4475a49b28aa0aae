package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/pkg/testutil"
)

func storedPlan(t *testing.T) model.Plan {
	t.Helper()
	plan, err := model.NewPlan(
		testutil.TestOwnerID1.String(),
		"New laptop",
		decimal.NewFromInt(1000),
		12,
		decimal.RequireFromString("1.99"),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		nil,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return plan.ClearEvents()
}

func TestUpdatePlan_Execute(t *testing.T) {
	t.Run("updates attributes without touching the payment", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByIDFunc: func(ctx context.Context, ownerID, planID string) (model.Plan, error) {
				return plan, nil
			},
		}

		uc := usecase.NewUpdatePlanUseCase(planRepo, &mockCategoryRepository{})

		newDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), dto.UpdatePlanRequest{
			OwnerID:         testutil.TestOwnerID1.String(),
			PlanID:          plan.ID(),
			Description:     "Refurbished laptop",
			InterestRate:    decimal.RequireFromString("0.99"),
			NextPaymentDate: newDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "Refurbished laptop", resp.Description)
		assert.True(t, decimal.RequireFromString("0.99").Equal(resp.InterestRate))
		assert.Equal(t, newDate, resp.NextPaymentDate)
		assert.True(t, plan.MonthlyPayment().Equal(resp.MonthlyPayment), "payment must stay fixed")

		require.Len(t, planRepo.savedPlans, 1)
	})

	t.Run("fails for unknown plan", func(t *testing.T) {
		uc := usecase.NewUpdatePlanUseCase(&mockPlanRepository{}, &mockCategoryRepository{})

		_, err := uc.Execute(context.Background(), dto.UpdatePlanRequest{
			OwnerID:         testutil.TestOwnerID1.String(),
			PlanID:          "missing",
			Description:     "x",
			NextPaymentDate: time.Now(),
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})

	t.Run("rejects completed plan", func(t *testing.T) {
		plan := storedPlan(t)
		completed, err := plan.ApplyPayment(testutil.TestAccountID.String(), time.Now().UTC())
		require.NoError(t, err)
		for completed.RemainingInstallments() > 0 {
			completed, err = completed.ApplyPayment(testutil.TestAccountID.String(), time.Now().UTC())
			require.NoError(t, err)
		}

		planRepo := &mockPlanRepository{
			findByIDFunc: func(ctx context.Context, ownerID, planID string) (model.Plan, error) {
				return completed.ClearEvents(), nil
			},
		}
		uc := usecase.NewUpdatePlanUseCase(planRepo, &mockCategoryRepository{})

		_, err = uc.Execute(context.Background(), dto.UpdatePlanRequest{
			OwnerID:         testutil.TestOwnerID1.String(),
			PlanID:          plan.ID(),
			Description:     "x",
			NextPaymentDate: time.Now(),
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
		assert.Empty(t, planRepo.savedPlans)
	})

	t.Run("rejects unknown user-defined category", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByIDFunc: func(ctx context.Context, ownerID, planID string) (model.Plan, error) {
				return plan, nil
			},
		}
		uc := usecase.NewUpdatePlanUseCase(planRepo, &mockCategoryRepository{})

		categoryID := 77
		_, err := uc.Execute(context.Background(), dto.UpdatePlanRequest{
			OwnerID:         testutil.TestOwnerID1.String(),
			PlanID:          plan.ID(),
			Description:     "x",
			NextPaymentDate: time.Now(),
			CategoryID:      &categoryID,
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})
}
