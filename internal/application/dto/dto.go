package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreatePlanRequest carries the data needed to create an installment plan.
type CreatePlanRequest struct {
	OwnerID           string          `json:"owner_id"`
	Description       string          `json:"description"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TotalInstallments int             `json:"total_installments"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	FirstPaymentDate  time.Time       `json:"first_payment_date"`
	CategoryID        *int            `json:"category_id,omitempty"`
}

// GetPlanRequest identifies a plan to retrieve.
type GetPlanRequest struct {
	OwnerID string `json:"owner_id"`
	PlanID  string `json:"plan_id"`
}

// ListPlansRequest lists an owner's plans, optionally active only.
type ListPlansRequest struct {
	OwnerID    string `json:"owner_id"`
	ActiveOnly bool   `json:"active_only"`
}

// ListPlansDueRequest lists plans with a payment due on or before AsOf.
type ListPlansDueRequest struct {
	AsOf time.Time `json:"as_of"`
}

// UpdatePlanRequest carries the editable plan attributes.
type UpdatePlanRequest struct {
	OwnerID         string          `json:"owner_id"`
	PlanID          string          `json:"plan_id"`
	Description     string          `json:"description"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	NextPaymentDate time.Time       `json:"next_payment_date"`
	CategoryID      *int            `json:"category_id,omitempty"`
}

// DeletePlanRequest identifies a plan to delete.
type DeletePlanRequest struct {
	OwnerID string `json:"owner_id"`
	PlanID  string `json:"plan_id"`
}

// ProcessPaymentRequest carries the data for one installment payment.
type ProcessPaymentRequest struct {
	OwnerID     string    `json:"owner_id"`
	PlanID      string    `json:"plan_id"`
	AccountID   string    `json:"account_id"`
	PaymentDate time.Time `json:"payment_date"`
	Notes       string    `json:"notes,omitempty"`
}

// SuggestRateRequest identifies the category to advise a rate for.
type SuggestRateRequest struct {
	CategoryID int `json:"category_id"`
}

// CompareRateRequest compares a user's rate against the market.
type CompareRateRequest struct {
	CategoryID int             `json:"category_id"`
	UserRate   decimal.Decimal `json:"user_rate"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PlanResponse is the external representation of an installment plan.
type PlanResponse struct {
	ID                    string          `json:"id"`
	OwnerID               string          `json:"owner_id"`
	Description           string          `json:"description"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	TotalInstallments     int             `json:"total_installments"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	StartDate             time.Time       `json:"start_date"`
	NextPaymentDate       time.Time       `json:"next_payment_date"`
	RemainingInstallments int             `json:"remaining_installments"`
	Status                string          `json:"status"`
	CategoryID            *int            `json:"category_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	PlanID                string          `json:"plan_id"`
	AmountPaid            decimal.Decimal `json:"amount_paid"`
	RemainingInstallments int             `json:"remaining_installments"`
	NextPaymentDate       time.Time       `json:"next_payment_date"`
	PlanStatus            string          `json:"plan_status"`
	AccountBalance        decimal.Decimal `json:"account_balance"`
}

// RateResponse is the external representation of a rate suggestion.
type RateResponse struct {
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Rate         decimal.Decimal `json:"rate"`
	Explanation  string          `json:"explanation"`
	Source       string          `json:"source"`
	IsMarketRate bool            `json:"is_market_rate"`
}

// RateComparisonResponse is the external representation of a rate comparison.
type RateComparisonResponse struct {
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	MarketRate   decimal.Decimal `json:"market_rate"`
	UserRate     decimal.Decimal `json:"user_rate"`
	Difference   decimal.Decimal `json:"difference"`
	IsGoodDeal   bool            `json:"is_good_deal"`
	Summary      string          `json:"summary"`
}
