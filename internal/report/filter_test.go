package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/ledgerlens/internal/model"
)

func dated(id, date string) model.Expense {
	return model.Expense{ID: id, Date: date, Total: 1}
}

func TestFilterByDateRangeAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		dated("mar-1", "2026-03-01"),
		dated("mar-31", "2026-03-31"),
		dated("feb-28", "2026-02-28"),
		dated("feb-1", "2026-02-01"),
		dated("jan-15", "2026-01-15"),
		dated("dec-31", "2025-12-31"),
		dated("undated", ""),
		dated("garbage", "not-a-date"),
	}

	tests := []struct {
		name    string
		rng     model.DateRange
		wantIDs []string
	}{
		{
			name:    "this month spans first to last day",
			rng:     model.RangeThisMonth,
			wantIDs: []string{"mar-1", "mar-31"},
		},
		{
			name:    "last month",
			rng:     model.RangeLastMonth,
			wantIDs: []string{"feb-28", "feb-1"},
		},
		{
			name:    "last three calendar months",
			rng:     model.RangeLast3Months,
			wantIDs: []string{"mar-1", "mar-31", "feb-28", "feb-1", "jan-15"},
		},
		{
			name:    "this year ends at now",
			rng:     model.RangeThisYear,
			wantIDs: []string{"mar-1", "feb-28", "feb-1", "jan-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByDateRangeAt(expenses, tt.rng, now)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByDateRangeAllIsIdentity(t *testing.T) {
	expenses := []model.Expense{
		dated("a", "2026-03-01"),
		dated("b", ""),
		dated("c", "garbage"),
	}

	got := FilterByDateRangeAt(expenses, model.RangeAll, time.Now())

	require.Len(t, got, len(expenses))
	assert.Equal(t, expenses, got)
}

func TestFilterByDateRangeYearBoundary(t *testing.T) {
	// In January, "last month" reaches back into the previous year.
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		dated("dec", "2025-12-15"),
		dated("jan", "2026-01-05"),
		dated("nov", "2025-11-30"),
	}

	got := FilterByDateRangeAt(expenses, model.RangeLastMonth, now)
	require.Len(t, got, 1)
	assert.Equal(t, "dec", got[0].ID)

	got = FilterByDateRangeAt(expenses, model.RangeLast3Months, now)
	require.Len(t, got, 3)
}

func TestFilterByDateRangeAcceptsTimestamps(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		dated("rfc3339", "2026-03-02T08:30:00Z"),
		dated("plain", "2026-03-02T08:30:00"),
	}

	got := FilterByDateRangeAt(expenses, model.RangeThisMonth, now)
	assert.Len(t, got, 2)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantOK bool
	}{
		{name: "iso date", in: "2026-03-02", wantOK: true},
		{name: "rfc3339", in: "2026-03-02T08:30:00Z", wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "garbage", in: "tomorrow", wantOK: false},
		{name: "partial", in: "2026-03", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
