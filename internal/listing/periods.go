package listing

import "time"

// Period selects a reporting window relative to "now"
type Period string

const (
	PeriodWeek    Period = "week"    // trailing 7 days
	PeriodMonth   Period = "month"   // calendar month to date
	PeriodQuarter Period = "quarter" // calendar quarter to date
	PeriodYear    Period = "year"    // calendar year to date
)

// ValidPeriod reports whether p is a known reporting period
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// PeriodStart returns the inclusive lower bound of the period ending at now.
// Week is a rolling 7x24h window; the rest are calendar-aligned to date.
func PeriodStart(p Period, now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodQuarter:
		quarter := int(now.Month()-1) / 3
		return time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default: // month
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// InPeriod reports whether t falls within [start, now]
func InPeriod(t, start, now time.Time) bool {
	return !t.Before(start) && !t.After(now)
}

// InWindow filters rows to those whose date (per dateOf) falls in the
// period ending at now
func InWindow[T any](rows []T, p Period, now time.Time, dateOf func(T) time.Time) []T {
	start := PeriodStart(p, now)
	return Apply(rows, func(row T) bool {
		return InPeriod(dateOf(row), start, now)
	})
}

// DateWindow is the payment-list date filter, measured from local midnight
type DateWindow string

const (
	WindowToday DateWindow = "today"
	WindowWeek  DateWindow = "week"  // trailing 7 days from midnight
	WindowMonth DateWindow = "month" // trailing 30 days from midnight
)

// WindowStart returns the inclusive lower bound of a payment date window
func WindowStart(w DateWindow, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowWeek:
		return midnight.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		return midnight.Add(-30 * 24 * time.Hour)
	default:
		return midnight
	}
}

// MatchesWindow reports whether t is on or after the window start.
// An empty or "all" window matches everything.
func MatchesWindow(t time.Time, w DateWindow, now time.Time) bool {
	if w == "" || string(w) == FilterAll {
		return true
	}
	return !t.Before(WindowStart(w, now))
}
