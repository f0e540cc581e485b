package report

import (
	"time"

	"github.com/fennwick/ledgerlens/internal/model"
)

// Build assembles the full report bundle for one fetch cycle, anchored at
// the current wall-clock date.
func Build(expenses []model.Expense, rng model.DateRange, budgets []model.Budget) model.Report {
	return BuildAt(expenses, rng, budgets, time.Now())
}

// BuildAt is Build with an explicit anchor time. The date-range filter
// applies to everything except the monthly trend, which always spans the
// full record set so the trend chart keeps its history, and the budget
// comparison, which applies its own current-month window.
func BuildAt(expenses []model.Expense, rng model.DateRange, budgets []model.Budget, now time.Time) model.Report {
	filtered := FilterByDateRangeAt(expenses, rng, now)

	r := model.Report{
		Expenses:          filtered,
		Stats:             Stats(filtered),
		CategoryBreakdown: ByCategory(filtered),
		MerchantBreakdown: ByMerchant(filtered),
		MonthlyTrend:      ByMonth(expenses),
		DailyTrend:        ByDay(filtered),
	}

	if len(budgets) > 0 {
		r.BudgetProgress = BudgetProgressAt(expenses, budgets, now)
	}

	return r
}
