package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/pkg/postgres"
)

const accountColumns = `id, owner_id, name, balance, version, updated_at`

// AccountRepo implements port.AccountRepository.
type AccountRepo struct {
	q postgres.Querier
}

// NewAccountRepo creates a new PostgreSQL-backed account repository.
func NewAccountRepo(q postgres.Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// FindByID retrieves an account by ID, owner-scoped.
func (r *AccountRepo) FindByID(ctx context.Context, ownerID, accountID string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 AND id = $2`
	return r.scanOneAccount(ctx, accountID, query, ownerID, accountID)
}

// FindByIDForUpdate locks the account row for the enclosing transaction.
func (r *AccountRepo) FindByIDForUpdate(ctx context.Context, ownerID, accountID string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 AND id = $2 FOR UPDATE`
	return r.scanOneAccount(ctx, accountID, query, ownerID, accountID)
}

// Save updates the account balance with an optimistic version guard.
func (r *AccountRepo) Save(ctx context.Context, account model.Account) error {
	query := `
		UPDATE accounts
		SET balance = $3, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $2
	`
	tag, err := r.q.Exec(ctx, query, account.ID(), account.Version(), account.Balance(), account.UpdatedAt())
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on account")
	}
	return nil
}

func (r *AccountRepo) scanOneAccount(ctx context.Context, accountID, query string, args ...any) (model.Account, error) {
	var (
		id, ownerID, name string
		balance           decimal.Decimal
		version           int
		updatedAt         time.Time
	)

	err := r.q.QueryRow(ctx, query, args...).Scan(&id, &ownerID, &name, &balance, &version, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, fault.NotFoundf("account %s not found", accountID)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("scan account: %w", err)
	}

	return model.ReconstructAccount(id, ownerID, name, balance, version, updatedAt), nil
}
