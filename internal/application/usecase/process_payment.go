package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/port"
)

// ProcessPaymentUseCase applies one installment payment: it records the
// expense transaction, debits the account and advances the plan, all inside a
// single database transaction. Any failure leaves every record untouched.
type ProcessPaymentUseCase struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewProcessPaymentUseCase wires dependencies.
func NewProcessPaymentUseCase(
	uow port.UnitOfWork,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute processes the payment atomically and publishes the resulting
// domain events after commit.
func (uc *ProcessPaymentUseCase) Execute(
	ctx context.Context,
	req dto.ProcessPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	var (
		updatedPlan    model.Plan
		updatedAccount model.Account
		paidAmount     decimal.Decimal
	)

	err := uc.uow.WithinTx(ctx, func(tx port.TxRepositories) error {
		// 1. Lock and load the plan, owner-scoped.
		plan, err := tx.Plans().FindByIDForUpdate(ctx, req.OwnerID, req.PlanID)
		if err != nil {
			return fmt.Errorf("find plan: %w", err)
		}

		// 2. Advance the plan before the account is even resolved, so a
		//    completed plan always rejects with an invalid-state fault.
		plan, err = plan.ApplyPayment(req.AccountID, now)
		if err != nil {
			return err
		}
		paidAmount = plan.MonthlyPayment()

		// 3. Lock and load the funding account.
		account, err := tx.Accounts().FindByIDForUpdate(ctx, req.OwnerID, req.AccountID)
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}

		// 4. Debit the account; the balance check lives in the aggregate.
		account, err = account.Debit(paidAmount, now)
		if err != nil {
			return err
		}

		// 5. Record the expense transaction.
		txn := model.NewPaymentTransaction(plan, req.AccountID, paymentDate, req.Notes, now)
		if err := tx.Transactions().Add(ctx, txn); err != nil {
			return fmt.Errorf("add transaction: %w", err)
		}

		// 6. Persist both aggregates.
		if err := tx.Accounts().Save(ctx, account); err != nil {
			return fmt.Errorf("save account: %w", err)
		}
		if err := tx.Plans().Save(ctx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		updatedPlan = plan
		updatedAccount = account
		return nil
	})
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	// Publish after commit. A broker failure must not undo a committed
	// payment, so it is logged and swallowed.
	uc.publishEvents(ctx, updatedPlan.DomainEvents())

	return dto.PaymentResponse{
		PlanID:                updatedPlan.ID(),
		AmountPaid:            paidAmount,
		RemainingInstallments: updatedPlan.RemainingInstallments(),
		NextPaymentDate:       updatedPlan.NextPaymentDate(),
		PlanStatus:            updatedPlan.Status().String(),
		AccountBalance:        updatedAccount.Balance(),
	}, nil
}

func (uc *ProcessPaymentUseCase) publishEvents(ctx context.Context, events []event.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		uc.logger.Error("publishing payment events failed",
			"error", err,
			"events", len(events),
		)
	}
}
