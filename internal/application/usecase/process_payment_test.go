package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/pkg/testutil"
)

var (
	paymentNow       = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	paymentFirstDate = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedPlan creates a plan owned by TestOwnerID1 and stores it.
func seedPlan(t *testing.T, uow *memUnitOfWork, amount string, installments int, rate string) model.Plan {
	t.Helper()
	plan, err := model.NewPlan(
		testutil.TestOwnerID1.String(),
		"Washing machine",
		decimal.RequireFromString(amount),
		installments,
		decimal.RequireFromString(rate),
		paymentFirstDate,
		nil,
		paymentNow,
	)
	require.NoError(t, err)
	plan = plan.ClearEvents()
	uow.store.plans[plan.ID()] = plan
	return plan
}

func seedAccount(uow *memUnitOfWork, balance string) model.Account {
	acc := model.ReconstructAccount(
		testutil.TestAccountID.String(),
		testutil.TestOwnerID1.String(),
		"Checking",
		decimal.RequireFromString(balance),
		1,
		paymentNow,
	)
	uow.store.accounts[acc.ID()] = acc
	return acc
}

func TestProcessPayment_Execute(t *testing.T) {
	t.Run("successfully processes a payment", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1000", 12, "1.99") // payment = 94.50
		seedAccount(uow, "500.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:     testutil.TestOwnerID1.String(),
			PlanID:      plan.ID(),
			AccountID:   testutil.TestAccountID.String(),
			PaymentDate: paymentFirstDate,
		})

		require.NoError(t, err)
		assert.Equal(t, plan.ID(), resp.PlanID)
		assert.True(t, decimal.RequireFromString("94.50").Equal(resp.AmountPaid))
		assert.Equal(t, 11, resp.RemainingInstallments)
		assert.Equal(t, paymentFirstDate.AddDate(0, 2, 0), resp.NextPaymentDate)
		assert.Equal(t, "ACTIVE", resp.PlanStatus)
		assert.True(t, decimal.RequireFromString("405.50").Equal(resp.AccountBalance), "got %s", resp.AccountBalance)

		// Persisted state matches the response.
		stored := uow.store.plans[plan.ID()]
		assert.Equal(t, 11, stored.RemainingInstallments())
		require.Len(t, uow.store.transactions, 1)
		txn := uow.store.transactions[0]
		assert.Equal(t, "Installment payment: Washing machine", txn.Description())
		assert.True(t, decimal.RequireFromString("94.50").Equal(txn.Amount()))

		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("insufficient funds leaves all state untouched", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1800", 12, "0") // payment = 150.00
		seedAccount(uow, "100.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindInsufficientFunds, fault.KindOf(err))

		f, ok := fault.As(err)
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("150.00").Equal(f.Requested()), "got %s", f.Requested())
		assert.True(t, decimal.RequireFromString("100.00").Equal(f.Available()))

		// Nothing changed.
		stored := uow.store.plans[plan.ID()]
		assert.Equal(t, 12, stored.RemainingInstallments())
		acc := uow.store.accounts[testutil.TestAccountID.String()]
		assert.True(t, decimal.RequireFromString("100.00").Equal(acc.Balance()))
		assert.Empty(t, uow.store.transactions)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("commit failure rolls back every record", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1000", 12, "1.99")
		seedAccount(uow, "500.00")
		uow.commitErr = errors.New("connection lost during commit")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		})

		require.Error(t, err)

		stored := uow.store.plans[plan.ID()]
		assert.Equal(t, 12, stored.RemainingInstallments())
		acc := uow.store.accounts[testutil.TestAccountID.String()]
		assert.True(t, decimal.RequireFromString("500.00").Equal(acc.Balance()))
		assert.Empty(t, uow.store.transactions)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("completed plan rejects payment", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "100", 1, "0")
		seedAccount(uow, "1000.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		req := dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		}

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.PlanStatus)
		assert.Equal(t, 0, resp.RemainingInstallments)

		_, err = uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
	})

	t.Run("completed plan rejects before the account is resolved", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "100", 1, "0")
		seedAccount(uow, "1000.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		})
		require.NoError(t, err)

		// Pair the now-completed plan with an account that does not exist:
		// the terminal state must win over the account lookup.
		_, err = uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: "00000000-0000-0000-0000-00000000dead",
		})
		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
	})

	t.Run("plan owned by someone else is not found", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1000", 12, "1.99")
		seedAccount(uow, "500.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID2.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		})

		require.Error(t, err)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})

	t.Run("broker failure does not fail a committed payment", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1000", 12, "1.99")
		seedAccount(uow, "500.00")
		failing := &mockEventPublisher{
			publishFunc: func(ctx context.Context, _ ...event.DomainEvent) error {
				return errors.New("kafka unavailable")
			},
		}

		uc := usecase.NewProcessPaymentUseCase(uow, failing, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, 11, resp.RemainingInstallments)

		// The payment itself is committed.
		stored := uow.store.plans[plan.ID()]
		assert.Equal(t, 11, stored.RemainingInstallments())
	})

	t.Run("twelve payments complete the plan and drain 1200 from the account", func(t *testing.T) {
		uow := newMemUnitOfWork()
		plan := seedPlan(t, uow, "1200", 12, "0") // payment = 100.00
		seedAccount(uow, "5000.00")
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(uow, publisher, discardLogger())

		req := dto.ProcessPaymentRequest{
			OwnerID:   testutil.TestOwnerID1.String(),
			PlanID:    plan.ID(),
			AccountID: testutil.TestAccountID.String(),
		}

		var last dto.PaymentResponse
		for i := 0; i < 12; i++ {
			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err, "payment %d", i+1)
			last = resp
		}

		assert.Equal(t, 0, last.RemainingInstallments)
		assert.Equal(t, "COMPLETED", last.PlanStatus)
		assert.True(t, decimal.RequireFromString("3800.00").Equal(last.AccountBalance), "got %s", last.AccountBalance)
		assert.Len(t, uow.store.transactions, 12)
		assert.Equal(t, paymentFirstDate.AddDate(0, 13, 0), last.NextPaymentDate)
	})
}
