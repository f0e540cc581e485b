package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fennwick/ledgerlens/internal/model"
)

// noData is reported for top-X stats over an empty record set.
const noData = "N/A"

// grouping accumulates per-key totals while remembering first-encounter
// order, so ties resolve to the earliest key seen.
type grouping struct {
	totals map[string]decimal.Decimal
	counts map[string]int
	keys   []string
}

func newGrouping() *grouping {
	return &grouping{
		totals: make(map[string]decimal.Decimal),
		counts: make(map[string]int),
	}
}

func (g *grouping) add(key string, amount float64) {
	if _, seen := g.totals[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.totals[key] = g.totals[key].Add(decimal.NewFromFloat(amount))
	g.counts[key]++
}

// top returns the key with the largest total, scanning in first-encounter
// order so earlier keys win ties.
func (g *grouping) top() string {
	if len(g.keys) == 0 {
		return noData
	}
	best := g.keys[0]
	for _, key := range g.keys[1:] {
		if g.totals[key].GreaterThan(g.totals[best]) {
			best = key
		}
	}
	return best
}

// Stats computes the overall summary for a set of expenses.
func Stats(expenses []model.Expense) model.ExpenseStats {
	if len(expenses) == 0 {
		return model.ExpenseStats{
			TopCategory:      noData,
			TopMerchant:      noData,
			TopPaymentMethod: noData,
		}
	}

	total := decimal.Zero
	byCategory := newGrouping()
	byMerchant := newGrouping()
	byPayment := newGrouping()

	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Total))
		byCategory.add(e.Category, e.Total)
		byMerchant.add(e.Merchant, e.Total)

		payment := strings.TrimSpace(e.PaymentMethod)
		if payment == "" {
			payment = "Unknown"
		}
		byPayment.add(payment, e.Total)
	}

	count := int64(len(expenses))

	return model.ExpenseStats{
		TotalSpending:      total.InexactFloat64(),
		TransactionCount:   len(expenses),
		AverageTransaction: total.Div(decimal.NewFromInt(count)).InexactFloat64(),
		TopCategory:        byCategory.top(),
		TopMerchant:        byMerchant.top(),
		TopPaymentMethod:   byPayment.top(),
	}
}

// ByCategory groups expenses by exact category label, sorted by total
// descending. Percentages are shares of the grand total and sum to 100
// whenever the grand total is positive.
func ByCategory(expenses []model.Expense) []model.CategorySummary {
	g := newGrouping()
	grand := decimal.Zero
	for _, e := range expenses {
		g.add(e.Category, e.Total)
		grand = grand.Add(decimal.NewFromFloat(e.Total))
	}

	summaries := make([]model.CategorySummary, 0, len(g.keys))
	for _, category := range g.keys {
		total := g.totals[category]

		var percentage float64
		if grand.IsPositive() {
			percentage = total.Div(grand).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}

		summaries = append(summaries, model.CategorySummary{
			Category:   category,
			Total:      total.InexactFloat64(),
			Count:      g.counts[category],
			Percentage: percentage,
			Color:      CategoryColor(category),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})

	return summaries
}

// ByMerchant groups expenses by exact merchant name, sorted by total
// descending.
func ByMerchant(expenses []model.Expense) []model.MerchantSummary {
	g := newGrouping()
	for _, e := range expenses {
		g.add(e.Merchant, e.Total)
	}

	summaries := make([]model.MerchantSummary, 0, len(g.keys))
	for _, merchant := range g.keys {
		total := g.totals[merchant]
		count := g.counts[merchant]

		summaries = append(summaries, model.MerchantSummary{
			Merchant:           merchant,
			Total:              total.InexactFloat64(),
			Count:              count,
			AverageTransaction: total.Div(decimal.NewFromInt(int64(count))).InexactFloat64(),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})

	return summaries
}

// ByMonth groups expenses into year-month buckets. Undated records are
// skipped. The result is sorted by the rendered label, not the underlying
// key; see DESIGN.md for why this ordering is kept.
func ByMonth(expenses []model.Expense) []model.MonthlySummary {
	g := newGrouping()
	for _, e := range expenses {
		if e.Date == "" {
			continue
		}
		g.add(monthKey(e.Date), e.Total)
	}

	summaries := make([]model.MonthlySummary, 0, len(g.keys))
	for _, key := range g.keys {
		summaries = append(summaries, model.MonthlySummary{
			Month: monthLabel(key),
			Total: g.totals[key].InexactFloat64(),
			Count: g.counts[key],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})

	return summaries
}

// ByDay groups expenses by exact date string, sorted ascending. Undated
// records are skipped.
func ByDay(expenses []model.Expense) []model.DailySummary {
	g := newGrouping()
	for _, e := range expenses {
		if e.Date == "" {
			continue
		}
		g.add(e.Date, e.Total)
	}

	summaries := make([]model.DailySummary, 0, len(g.keys))
	for _, date := range g.keys {
		summaries = append(summaries, model.DailySummary{
			Date:  date,
			Total: g.totals[date].InexactFloat64(),
			Count: g.counts[date],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}

// BudgetProgress compares current-month spend against each configured
// budget, anchored at the current wall-clock date.
func BudgetProgress(expenses []model.Expense, budgets []model.Budget) []model.BudgetProgress {
	return BudgetProgressAt(expenses, budgets, time.Now())
}

// BudgetProgressAt is BudgetProgress with an explicit anchor time. Spend is
// always restricted to the current-month window, regardless of any range
// filtering already applied upstream. Budget categories must match expense
// categories exactly; a budget with no matching spend reports 0.
func BudgetProgressAt(expenses []model.Expense, budgets []model.Budget, now time.Time) []model.BudgetProgress {
	currentMonth := FilterByDateRangeAt(expenses, model.RangeThisMonth, now)

	spending := make(map[string]decimal.Decimal)
	for _, e := range currentMonth {
		spending[e.Category] = spending[e.Category].Add(decimal.NewFromFloat(e.Total))
	}

	progress := make([]model.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		spent := spending[budget.Category]

		var percentage float64
		if budget.MonthlyLimit > 0 {
			percentage = spent.
				Div(decimal.NewFromFloat(budget.MonthlyLimit)).
				Mul(decimal.NewFromInt(100)).
				InexactFloat64()
		}

		status := model.BudgetSafe
		switch {
		case percentage >= 90:
			status = model.BudgetDanger
		case percentage >= 70:
			status = model.BudgetWarning
		}

		progress = append(progress, model.BudgetProgress{
			Category:   budget.Category,
			Spent:      spent.InexactFloat64(),
			Limit:      budget.MonthlyLimit,
			Percentage: percentage,
			Status:     status,
		})
	}

	return progress
}

// monthKey extracts the year-month prefix of an ISO date.
func monthKey(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}

// monthLabel renders a year-month key for display, e.g. "2025-12" becomes
// "Dec 2025". Keys that do not parse are returned as-is.
func monthLabel(key string) string {
	t, err := time.Parse("2006-01-02", key+"-01")
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
