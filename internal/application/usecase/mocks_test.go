package usecase_test

import (
	"context"
	"time"

	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/internal/domain/model"
	"github.com/finwallet/installment-service/internal/domain/port"
	"github.com/finwallet/installment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Func-field mocks
// ---------------------------------------------------------------------------

type mockPlanRepository struct {
	saveFunc              func(ctx context.Context, plan model.Plan) error
	findByIDFunc          func(ctx context.Context, ownerID, planID string) (model.Plan, error)
	findByIDForUpdateFunc func(ctx context.Context, ownerID, planID string) (model.Plan, error)
	findByOwnerFunc       func(ctx context.Context, ownerID string) ([]model.Plan, error)
	findActiveByOwnerFunc func(ctx context.Context, ownerID string) ([]model.Plan, error)
	findDueFunc           func(ctx context.Context, asOf time.Time) ([]model.Plan, error)
	deleteFunc            func(ctx context.Context, ownerID, planID string) error

	savedPlans []model.Plan
	deletedIDs []string
}

func (m *mockPlanRepository) Save(ctx context.Context, plan model.Plan) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, plan); err != nil {
			return err
		}
	}
	m.savedPlans = append(m.savedPlans, plan)
	return nil
}

func (m *mockPlanRepository) FindByID(ctx context.Context, ownerID, planID string) (model.Plan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, ownerID, planID)
	}
	return model.Plan{}, fault.NotFoundf("plan %s not found", planID)
}

func (m *mockPlanRepository) FindByIDForUpdate(ctx context.Context, ownerID, planID string) (model.Plan, error) {
	if m.findByIDForUpdateFunc != nil {
		return m.findByIDForUpdateFunc(ctx, ownerID, planID)
	}
	return m.FindByID(ctx, ownerID, planID)
}

func (m *mockPlanRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Plan, error) {
	if m.findByOwnerFunc != nil {
		return m.findByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlanRepository) FindActiveByOwner(ctx context.Context, ownerID string) ([]model.Plan, error) {
	if m.findActiveByOwnerFunc != nil {
		return m.findActiveByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlanRepository) FindDue(ctx context.Context, asOf time.Time) ([]model.Plan, error) {
	if m.findDueFunc != nil {
		return m.findDueFunc(ctx, asOf)
	}
	return nil, nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, ownerID, planID string) error {
	if m.deleteFunc != nil {
		if err := m.deleteFunc(ctx, ownerID, planID); err != nil {
			return err
		}
	}
	m.deletedIDs = append(m.deletedIDs, planID)
	return nil
}

type mockCategoryRepository struct {
	existsFunc func(ctx context.Context, ownerID string, categoryID int) (bool, error)
}

func (m *mockCategoryRepository) Exists(ctx context.Context, ownerID string, categoryID int) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, ownerID, categoryID)
	}
	return false, nil
}

type mockTransactionRepository struct {
	addFunc           func(ctx context.Context, txn model.Transaction) error
	existsForPlanFunc func(ctx context.Context, planID string) (bool, error)

	added []model.Transaction
}

func (m *mockTransactionRepository) Add(ctx context.Context, txn model.Transaction) error {
	if m.addFunc != nil {
		if err := m.addFunc(ctx, txn); err != nil {
			return err
		}
	}
	m.added = append(m.added, txn)
	return nil
}

func (m *mockTransactionRepository) ExistsForPlan(ctx context.Context, planID string) (bool, error) {
	if m.existsForPlanFunc != nil {
		return m.existsForPlanFunc(ctx, planID)
	}
	return false, nil
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error

	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if m.publishFunc != nil {
		if err := m.publishFunc(ctx, events...); err != nil {
			return err
		}
	}
	m.publishedEvents = append(m.publishedEvents, events...)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory unit of work
// ---------------------------------------------------------------------------

// memStore is the shared state behind the in-memory unit of work.
type memStore struct {
	plans        map[string]model.Plan
	accounts     map[string]model.Account
	transactions []model.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		plans:    make(map[string]model.Plan),
		accounts: make(map[string]model.Account),
	}
}

func (s *memStore) clone() *memStore {
	next := newMemStore()
	for k, v := range s.plans {
		next.plans[k] = v
	}
	for k, v := range s.accounts {
		next.accounts[k] = v
	}
	next.transactions = append(next.transactions, s.transactions...)
	return next
}

// memUnitOfWork runs the transactional function against a clone of the store
// and merges the clone back only when everything succeeds, mirroring a real
// database rollback. commitErr forces a failure at commit time.
type memUnitOfWork struct {
	store     *memStore
	commitErr error
}

func newMemUnitOfWork() *memUnitOfWork {
	return &memUnitOfWork{store: newMemStore()}
}

func (u *memUnitOfWork) WithinTx(_ context.Context, fn func(tx port.TxRepositories) error) error {
	working := u.store.clone()
	if err := fn(&memTxRepositories{store: working}); err != nil {
		return err
	}
	if u.commitErr != nil {
		return u.commitErr
	}
	u.store = working
	return nil
}

type memTxRepositories struct {
	store *memStore
}

func (r *memTxRepositories) Plans() port.PlanRepository               { return &memPlanRepo{store: r.store} }
func (r *memTxRepositories) Accounts() port.AccountRepository         { return &memAccountRepo{store: r.store} }
func (r *memTxRepositories) Transactions() port.TransactionRepository { return &memTxnRepo{store: r.store} }

type memPlanRepo struct {
	store *memStore
}

func (r *memPlanRepo) Save(_ context.Context, plan model.Plan) error {
	r.store.plans[plan.ID()] = plan.ClearEvents()
	return nil
}

func (r *memPlanRepo) FindByID(_ context.Context, ownerID, planID string) (model.Plan, error) {
	plan, ok := r.store.plans[planID]
	if !ok || plan.OwnerID() != ownerID {
		return model.Plan{}, fault.NotFoundf("plan %s not found", planID)
	}
	return plan, nil
}

func (r *memPlanRepo) FindByIDForUpdate(ctx context.Context, ownerID, planID string) (model.Plan, error) {
	return r.FindByID(ctx, ownerID, planID)
}

func (r *memPlanRepo) FindByOwner(_ context.Context, ownerID string) ([]model.Plan, error) {
	var out []model.Plan
	for _, p := range r.store.plans {
		if p.OwnerID() == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) FindActiveByOwner(ctx context.Context, ownerID string) ([]model.Plan, error) {
	all, _ := r.FindByOwner(ctx, ownerID)
	var out []model.Plan
	for _, p := range all {
		if p.Status().Equal(valueobject.PlanStatusActive) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) FindDue(_ context.Context, asOf time.Time) ([]model.Plan, error) {
	var out []model.Plan
	for _, p := range r.store.plans {
		if p.Status().Equal(valueobject.PlanStatusActive) && !p.NextPaymentDate().After(asOf) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) Delete(_ context.Context, ownerID, planID string) error {
	plan, ok := r.store.plans[planID]
	if !ok || plan.OwnerID() != ownerID {
		return fault.NotFoundf("plan %s not found", planID)
	}
	delete(r.store.plans, planID)
	return nil
}

type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) FindByID(_ context.Context, ownerID, accountID string) (model.Account, error) {
	acc, ok := r.store.accounts[accountID]
	if !ok || acc.OwnerID() != ownerID {
		return model.Account{}, fault.NotFoundf("account %s not found", accountID)
	}
	return acc, nil
}

func (r *memAccountRepo) FindByIDForUpdate(ctx context.Context, ownerID, accountID string) (model.Account, error) {
	return r.FindByID(ctx, ownerID, accountID)
}

func (r *memAccountRepo) Save(_ context.Context, account model.Account) error {
	r.store.accounts[account.ID()] = account
	return nil
}

type memTxnRepo struct {
	store *memStore
}

func (r *memTxnRepo) Add(_ context.Context, txn model.Transaction) error {
	r.store.transactions = append(r.store.transactions, txn)
	return nil
}

func (r *memTxnRepo) ExistsForPlan(_ context.Context, planID string) (bool, error) {
	for _, txn := range r.store.transactions {
		if txn.PlanID() == planID {
			return true, nil
		}
	}
	return false, nil
}
