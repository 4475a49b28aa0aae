package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finwallet/installment-service/internal/domain/port"
	"github.com/finwallet/installment-service/pkg/postgres"
)

// UnitOfWork implements port.UnitOfWork on a pgx pool. Every WithinTx call
// opens one read-committed transaction and hands the caller repositories
// bound to it, so row locks taken with FOR UPDATE hold until commit.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork creates a pool-backed unit of work.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

// WithinTx runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(tx port.TxRepositories) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	return postgres.WithTxOptions(ctx, u.pool, opts, func(tx pgx.Tx) error {
		return fn(&txRepositories{tx: tx})
	})
}

// txRepositories binds the repositories to one pgx transaction.
type txRepositories struct {
	tx pgx.Tx
}

func (r *txRepositories) Plans() port.PlanRepository               { return NewPlanRepo(r.tx) }
func (r *txRepositories) Accounts() port.AccountRepository         { return NewAccountRepo(r.tx) }
func (r *txRepositories) Transactions() port.TransactionRepository { return NewTransactionRepo(r.tx) }
