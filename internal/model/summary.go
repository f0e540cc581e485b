package model

// CategorySummary is the per-category spending breakdown.
type CategorySummary struct {
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// MerchantSummary is the per-merchant spending breakdown.
type MerchantSummary struct {
	Merchant           string  `json:"merchant"`
	Total              float64 `json:"total"`
	AverageTransaction float64 `json:"averageTransaction"`
	Count              int     `json:"count"`
}

// MonthlySummary is one point of the month-bucketed trend.
type MonthlySummary struct {
	Month string  `json:"month"` // display label, e.g. "Dec 2025"
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// DailySummary is one point of the day-bucketed trend.
type DailySummary struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ExpenseStats summarizes a set of expenses.
type ExpenseStats struct {
	TopCategory        string  `json:"topCategory"`
	TopMerchant        string  `json:"topMerchant"`
	TopPaymentMethod   string  `json:"topPaymentMethod"`
	TotalSpending      float64 `json:"totalSpending"`
	AverageTransaction float64 `json:"averageTransaction"`
	TransactionCount   int     `json:"transactionCount"`
}

// BudgetStatus classifies how close current spend is to a budget limit.
type BudgetStatus string

// Budget status values, in increasing order of concern.
const (
	BudgetSafe    BudgetStatus = "safe"
	BudgetWarning BudgetStatus = "warning"
	BudgetDanger  BudgetStatus = "danger"
)

// BudgetProgress compares current-month spend against one budget.
type BudgetProgress struct {
	Category   string       `json:"category"`
	Status     BudgetStatus `json:"status"`
	Spent      float64      `json:"spent"`
	Limit      float64      `json:"limit"`
	Percentage float64      `json:"percentage"`
}

// Report bundles every derived view for one fetch cycle. All fields are
// plain data and JSON-serializable.
type Report struct {
	Stats             ExpenseStats      `json:"stats"`
	Expenses          []Expense         `json:"expenses"`
	CategoryBreakdown []CategorySummary `json:"categoryBreakdown"`
	MerchantBreakdown []MerchantSummary `json:"merchantBreakdown"`
	MonthlyTrend      []MonthlySummary  `json:"monthlyTrend"`
	DailyTrend        []DailySummary    `json:"dailyTrend"`
	BudgetProgress    []BudgetProgress  `json:"budgetProgress,omitempty"`
}
