package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateInfo describes the suggested monthly interest rate for a category.
type RateInfo struct {
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Rate         decimal.Decimal `json:"rate"`
	Explanation  string          `json:"explanation"`
	Source       string          `json:"source"`
	IsMarketRate bool            `json:"is_market_rate"`
}

// RateComparison is the result of comparing a user's rate against the market.
type RateComparison struct {
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	MarketRate   decimal.Decimal `json:"market_rate"`
	UserRate     decimal.Decimal `json:"user_rate"`
	Difference   decimal.Decimal `json:"difference"`
	IsGoodDeal   bool            `json:"is_good_deal"`
	Summary      string          `json:"summary"`
}

type rateEntry struct {
	rate        decimal.Decimal
	explanation string
}

// RateAdvisor suggests market interest rates per purchase category. It is
// read-only after construction and never fails: unknown categories fall back
// to banded defaults.
type RateAdvisor struct {
	rates map[int]rateEntry
}

// NewRateAdvisor builds an advisor with the built-in market rate table.
func NewRateAdvisor() *RateAdvisor {
	return &RateAdvisor{
		rates: map[int]rateEntry{
			26: {decimal.RequireFromString("1.99"), "Typical store financing for consumer electronics"},
			27: {decimal.RequireFromString("1.49"), "Furniture retailers often run promotional rates"},
			28: {decimal.RequireFromString("1.49"), "Appliance financing through retail partners"},
			29: {decimal.RequireFromString("0.99"), "Auto-related purchases carry the lowest retail rates"},
			30: {decimal.RequireFromString("2.49"), "Credit card installment conversions are the most expensive"},
			31: {decimal.RequireFromString("1.49"), "General household purchases at standard retail financing"},
			32: {decimal.RequireFromString("1.99"), "Technology purchases at typical store financing"},
			33: {decimal.RequireFromString("1.79"), "Clothing retailers with store-card financing"},
			34: {decimal.RequireFromString("0.89"), "Education financing is usually subsidised"},
			35: {decimal.RequireFromString("1.99"), "Default retail financing rate"},
		},
	}
}

// SuggestRate returns the advised monthly rate for the given category.
// Non-installment categories (id < 26) get a zero rate; unknown installment
// categories fall back to a banded estimate.
func (a *RateAdvisor) SuggestRate(categoryID int) RateInfo {
	if entry, ok := a.rates[categoryID]; ok {
		return RateInfo{
			CategoryID:   categoryID,
			CategoryName: CategoryName(categoryID),
			Rate:         entry.rate,
			Explanation:  entry.explanation,
			Source:       "market_table",
			IsMarketRate: true,
		}
	}

	if categoryID < InstallmentCategoryMin {
		return RateInfo{
			CategoryID:   categoryID,
			CategoryName: CategoryName(categoryID),
			Rate:         decimal.Zero,
			Explanation:  "Not a financed-purchase category",
			Source:       "none",
		}
	}

	return RateInfo{
		CategoryID:   categoryID,
		CategoryName: CategoryName(categoryID),
		Rate:         a.fallbackRate(categoryID),
		Explanation:  "Estimated from similar category band",
		Source:       "band_estimate",
	}
}

// fallbackRate returns a banded estimate for categories without a table entry.
func (a *RateAdvisor) fallbackRate(categoryID int) decimal.Decimal {
	switch {
	case categoryID >= 26 && categoryID <= 28:
		return decimal.RequireFromString("1.79")
	case categoryID == 29:
		return decimal.RequireFromString("0.99")
	case categoryID == 30:
		return decimal.RequireFromString("2.49")
	case categoryID >= 31 && categoryID <= 33:
		return decimal.RequireFromString("1.69")
	case categoryID == 34:
		return decimal.RequireFromString("0.89")
	default:
		return decimal.RequireFromString("1.99")
	}
}

// AllRates returns the full market rate table keyed by category id.
func (a *RateAdvisor) AllRates() map[int]RateInfo {
	out := make(map[int]RateInfo, len(a.rates))
	for id := range a.rates {
		out[id] = a.SuggestRate(id)
	}
	return out
}

// CompareWithMarket compares a user's rate against the market rate for the
// category. A rate at or below market is considered a good deal.
func (a *RateAdvisor) CompareWithMarket(categoryID int, userRate decimal.Decimal) RateComparison {
	market := a.SuggestRate(categoryID)
	diff := userRate.Sub(market.Rate)
	good := diff.LessThanOrEqual(decimal.Zero)

	var summary string
	switch {
	case diff.IsZero():
		summary = "Your rate matches the market rate"
	case good:
		summary = fmt.Sprintf("Your rate is %s below the market rate of %s%%, a good deal", diff.Abs(), market.Rate)
	default:
		summary = fmt.Sprintf("Your rate is %s above the market rate of %s%%, consider negotiating", diff, market.Rate)
	}

	return RateComparison{
		CategoryID:   categoryID,
		CategoryName: market.CategoryName,
		MarketRate:   market.Rate,
		UserRate:     userRate,
		Difference:   diff,
		IsGoodDeal:   good,
		Summary:      summary,
	}
}
