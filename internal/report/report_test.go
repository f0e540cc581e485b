package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/ledgerlens/internal/model"
)

func TestBuildAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		expense("Costco", "🛒 Groceries", "2026-03-10", 80),
		expense("Shell", "⛽ Transport", "2026-03-12", 20),
		expense("Costco", "🛒 Groceries", "2026-01-05", 300),
	}
	budgets := []model.Budget{{Category: "🛒 Groceries", MonthlyLimit: 100}}

	got := BuildAt(expenses, model.RangeThisMonth, budgets, now)

	// Filtered views cover March only.
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, 2, got.Stats.TransactionCount)
	assert.InDelta(t, 100, got.Stats.TotalSpending, 1e-9)
	require.Len(t, got.CategoryBreakdown, 2)
	require.Len(t, got.DailyTrend, 2)

	// The monthly trend spans the full history.
	require.Len(t, got.MonthlyTrend, 2)

	// Budget progress uses the current-month window over the full set.
	require.Len(t, got.BudgetProgress, 1)
	assert.InDelta(t, 80, got.BudgetProgress[0].Spent, 1e-9)
	assert.Equal(t, model.BudgetWarning, got.BudgetProgress[0].Status)
}

func TestBuildAtWithoutBudgets(t *testing.T) {
	got := BuildAt(nil, model.RangeAll, nil, time.Now())

	assert.Empty(t, got.BudgetProgress)
	assert.Equal(t, "N/A", got.Stats.TopCategory)
	assert.Empty(t, got.Expenses)
}

func TestReportIsJSONSerializable(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := BuildAt([]model.Expense{
		expense("Costco", "🛒 Groceries", "2026-03-10", 80),
	}, model.RangeAll, []model.Budget{{Category: "🛒 Groceries", MonthlyLimit: 100}}, now)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	var round model.Report
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, got.Stats, round.Stats)
}
