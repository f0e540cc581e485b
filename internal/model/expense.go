// Package model defines the core data types shared across the application.
package model

// RawItem is a single collection item as returned by the Craft API.
// Property names and value shapes are whatever the user's collection happens
// to use; nothing beyond the ID is guaranteed.
type RawItem struct {
	Properties map[string]any `json:"properties,omitempty"`
	ID         string         `json:"id"`
	Title      string         `json:"title,omitempty"`
	Merchant   string         `json:"merchant,omitempty"`
}

// Expense is the canonical transaction record produced by normalization.
// Instances are immutable once created; aggregation only reads them.
type Expense struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Merchant      string  `json:"merchant"`
	Date          string  `json:"date"` // ISO calendar date, empty means undated
	Category      string  `json:"category"`
	PaymentMethod string  `json:"paymentMethod"`
	Summary       string  `json:"summary"`
	LoggedAt      string  `json:"loggedAt"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// Budget is a user-configured monthly spending limit for one category.
// The category label must match Expense.Category exactly for spend to count
// against it.
type Budget struct {
	Category     string  `json:"category"`
	MonthlyLimit float64 `json:"monthlyLimit"`
}

// DateRange selects a reporting window anchored at the current date.
type DateRange string

// Supported date ranges.
const (
	RangeAll         DateRange = "all"
	RangeThisMonth   DateRange = "thisMonth"
	RangeLastMonth   DateRange = "lastMonth"
	RangeLast3Months DateRange = "last3Months"
	RangeThisYear    DateRange = "thisYear"
)

// Valid reports whether r is one of the supported date ranges.
func (r DateRange) Valid() bool {
	switch r {
	case RangeAll, RangeThisMonth, RangeLastMonth, RangeLast3Months, RangeThisYear:
		return true
	}
	return false
}
