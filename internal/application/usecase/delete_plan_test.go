package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/pkg/testutil"
)

func TestDeletePlan_Execute(t *testing.T) {
	t.Run("deletes a plan without payments", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByIDFunc: func(ctx context.Context, ownerID, planID string) (model.Plan, error) {
				return plan, nil
			},
		}
		txnRepo := &mockTransactionRepository{}

		uc := usecase.NewDeletePlanUseCase(planRepo, txnRepo)

		err := uc.Execute(context.Background(), dto.DeletePlanRequest{
			OwnerID: testutil.TestOwnerID1.String(),
			PlanID:  plan.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{plan.ID()}, planRepo.deletedIDs)
	})

	t.Run("refuses to delete a plan with payment history", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByIDFunc: func(ctx context.Context, ownerID, planID string) (model.Plan, error) {
				return plan, nil
			},
		}
		txnRepo := &mockTransactionRepository{
			existsForPlanFunc: func(ctx context.Context, planID string) (bool, error) {
				return true, nil
			},
		}

		uc := usecase.NewDeletePlanUseCase(planRepo, txnRepo)

		err := uc.Execute(context.Background(), dto.DeletePlanRequest{
			OwnerID: testutil.TestOwnerID1.String(),
			PlanID:  plan.ID(),
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
		assert.Contains(t, err.Error(), "existing payments")
		assert.Empty(t, planRepo.deletedIDs)
	})

	t.Run("fails for unknown plan", func(t *testing.T) {
		uc := usecase.NewDeletePlanUseCase(&mockPlanRepository{}, &mockTransactionRepository{})

		err := uc.Execute(context.Background(), dto.DeletePlanRequest{
			OwnerID: testutil.TestOwnerID1.String(),
			PlanID:  "missing",
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})
}
