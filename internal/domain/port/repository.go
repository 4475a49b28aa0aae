// Package port declares the outbound interfaces the domain and application
// layers depend on. Infrastructure provides the implementations.
package port

import (
	"context"
	"time"

	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/internal/domain/model"
)

// PlanRepository persists installment plans. All lookups are owner-scoped:
// a plan belonging to a different owner behaves as if it does not exist.
type PlanRepository interface {
	Save(ctx context.Context, plan model.Plan) error
	FindByID(ctx context.Context, ownerID, planID string) (model.Plan, error)
	// FindByIDForUpdate locks the plan row for the duration of the enclosing
	// transaction.
	FindByIDForUpdate(ctx context.Context, ownerID, planID string) (model.Plan, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Plan, error)
	FindActiveByOwner(ctx context.Context, ownerID string) ([]model.Plan, error)
	// FindDue returns active plans across all owners whose next payment date
	// is on or before asOf.
	FindDue(ctx context.Context, asOf time.Time) ([]model.Plan, error)
	Delete(ctx context.Context, ownerID, planID string) error
}

// AccountRepository reads and updates wallet account balances.
type AccountRepository interface {
	FindByID(ctx context.Context, ownerID, accountID string) (model.Account, error)
	// FindByIDForUpdate locks the account row for the duration of the
	// enclosing transaction.
	FindByIDForUpdate(ctx context.Context, ownerID, accountID string) (model.Account, error)
	Save(ctx context.Context, account model.Account) error
}

// TransactionRepository appends ledger transactions.
type TransactionRepository interface {
	Add(ctx context.Context, txn model.Transaction) error
	ExistsForPlan(ctx context.Context, planID string) (bool, error)
}

// CategoryRepository checks user-defined category existence.
type CategoryRepository interface {
	Exists(ctx context.Context, ownerID string, categoryID int) (bool, error)
}

// TxRepositories exposes the repositories bound to one database transaction.
type TxRepositories interface {
	Plans() PlanRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
}

// UnitOfWork runs a function inside a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx TxRepositories) error) error
}

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
