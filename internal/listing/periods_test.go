package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidPeriod(t *testing.T) {
	require.True(t, ValidPeriod(PeriodWeek))
	require.True(t, ValidPeriod(PeriodMonth))
	require.True(t, ValidPeriod(PeriodQuarter))
	require.True(t, ValidPeriod(PeriodYear))
	require.False(t, ValidPeriod("fortnight"))
	require.False(t, ValidPeriod(""))
}

func TestPeriodStartWeekIsRolling(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)
	start := PeriodStart(PeriodWeek, now)
	require.Equal(t, now.Add(-7*24*time.Hour), start)
}

func TestPeriodStartCalendarAligned(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	require.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), PeriodStart(PeriodMonth, now))
	require.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), PeriodStart(PeriodQuarter, now))
	require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), PeriodStart(PeriodYear, now))
}

func TestPeriodStartQuarterFirstMonth(t *testing.T) {
	now := time.Date(2026, time.October, 2, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), PeriodStart(PeriodQuarter, now))
}

func TestInWindowScenario(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	type order struct {
		created time.Time
	}
	twoDaysOld := order{created: now.Add(-2 * 24 * time.Hour)}
	fortyDaysOld := order{created: now.Add(-40 * 24 * time.Hour)}
	rows := []order{twoDaysOld, fortyDaysOld}

	dateOf := func(o order) time.Time { return o.created }

	require.Len(t, InWindow(rows, PeriodWeek, now, dateOf), 1)
	require.Len(t, InWindow(rows, PeriodMonth, now, dateOf), 1)

	// Forty days back from late August lands in July, inside the
	// current quarter and year
	require.Len(t, InWindow(rows, PeriodQuarter, now, dateOf), 2)
	require.Len(t, InWindow(rows, PeriodYear, now, dateOf), 2)
}

func TestInPeriodBoundsAreInclusive(t *testing.T) {
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	require.True(t, InPeriod(start, start, now))
	require.True(t, InPeriod(now, start, now))
	require.False(t, InPeriod(start.Add(-time.Nanosecond), start, now))
	require.False(t, InPeriod(now.Add(time.Nanosecond), start, now))
}

func TestWindowStartFromLocalMidnight(t *testing.T) {
	now := time.Date(2026, time.August, 28, 17, 45, 0, 0, time.UTC)
	midnight := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	require.Equal(t, midnight, WindowStart(WindowToday, now))
	require.Equal(t, midnight.Add(-7*24*time.Hour), WindowStart(WindowWeek, now))
	require.Equal(t, midnight.Add(-30*24*time.Hour), WindowStart(WindowMonth, now))
}

func TestMatchesWindow(t *testing.T) {
	now := time.Date(2026, time.August, 28, 17, 45, 0, 0, time.UTC)

	thisMorning := time.Date(2026, time.August, 28, 8, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	require.True(t, MatchesWindow(thisMorning, WindowToday, now))
	require.False(t, MatchesWindow(yesterday, WindowToday, now))
	require.True(t, MatchesWindow(yesterday, WindowWeek, now))

	// Empty and "all" windows match everything
	require.True(t, MatchesWindow(yesterday, "", now))
	require.True(t, MatchesWindow(yesterday, DateWindow(FilterAll), now))
}
