// Package report derives presentation-ready aggregates from canonical
// expense records: summary stats, breakdowns, time-bucketed trends and
// budget comparisons. Everything here is a pure function over its inputs.
package report

import (
	"time"

	"github.com/fennwick/ledgerlens/internal/model"
)

// dateLayouts are tried in order when parsing a record's date field.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FilterByDateRange narrows expenses to the given range, anchored at the
// current wall-clock date.
func FilterByDateRange(expenses []model.Expense, rng model.DateRange) []model.Expense {
	return FilterByDateRangeAt(expenses, rng, time.Now())
}

// FilterByDateRangeAt is FilterByDateRange with an explicit anchor time.
// RangeAll returns the input unchanged. For every other range, records whose
// date is empty or unparsable are excluded.
func FilterByDateRangeAt(expenses []model.Expense, rng model.DateRange, now time.Time) []model.Expense {
	if rng == model.RangeAll {
		return expenses
	}

	start, end, ok := rangeWindow(rng, now)
	if !ok {
		return expenses
	}

	filtered := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		d, parsed := parseDate(e.Date)
		if !parsed {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// rangeWindow computes the inclusive [start, end] window for a range. The
// third return is false for unrecognized ranges.
func rangeWindow(rng model.DateRange, now time.Time) (time.Time, time.Time, bool) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch rng {
	case model.RangeThisMonth:
		return monthStart, endOfMonth(monthStart), true
	case model.RangeLastMonth:
		prev := monthStart.AddDate(0, -1, 0)
		return prev, endOfMonth(prev), true
	case model.RangeLast3Months:
		// Trailing three calendar months including the current one.
		return monthStart.AddDate(0, -2, 0), endOfMonth(monthStart), true
	case model.RangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now.UTC(), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// endOfMonth returns the last instant of the month containing monthStart.
func endOfMonth(monthStart time.Time) time.Time {
	return monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// parseDate parses a record's date string. Failures are reported, never
// raised; callers exclude such records.
func parseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, date); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}
