package postgres

import (
	"context"
	"fmt"

	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/pkg/postgres"
)

// TransactionRepo implements port.TransactionRepository. The ledger is
// append-only from this service's point of view.
type TransactionRepo struct {
	q postgres.Querier
}

// NewTransactionRepo creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepo(q postgres.Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Add appends one ledger transaction.
func (r *TransactionRepo) Add(ctx context.Context, txn model.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, owner_id, account_id, plan_id, description,
			amount, type, category_id, date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.q.Exec(ctx, query,
		txn.ID(), txn.OwnerID(), txn.AccountID(), txn.PlanID(), txn.Description(),
		txn.Amount(), txn.Type().String(), txn.CategoryID(), txn.Date(), txn.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ExistsForPlan reports whether any payment was recorded against the plan.
func (r *TransactionRepo) ExistsForPlan(ctx context.Context, planID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE plan_id = $1)`, planID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check plan transactions: %w", err)
	}
	return exists, nil
}
