package occurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// LastDayOfMonth
// ──────────────────────────────────────────────────────────────────────────────

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 31, LastDayOfMonth(2024, time.January))
	assert.Equal(t, 29, LastDayOfMonth(2024, time.February), "leap year")
	assert.Equal(t, 28, LastDayOfMonth(2023, time.February))
	assert.Equal(t, 30, LastDayOfMonth(2024, time.April))
	assert.Equal(t, 31, LastDayOfMonth(2024, time.December))
}

func TestLastDayOfMonth_CenturyRules(t *testing.T) {
	assert.Equal(t, 28, LastDayOfMonth(1900, time.February), "divisible by 100 is not leap")
	assert.Equal(t, 29, LastDayOfMonth(2000, time.February), "divisible by 400 is leap")
}

// ──────────────────────────────────────────────────────────────────────────────
// AddMonthsClamped
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMonthsClamped_PinsToAnchor(t *testing.T) {
	base := date(2024, time.January, 15, 12, 30, 0)

	got := AddMonthsClamped(base, 1, 31)
	assert.Equal(t, date(2024, time.February, 29, 12, 30, 0), got, "anchor 31 clamps to Feb 29")

	got = AddMonthsClamped(base, 2, 31)
	assert.Equal(t, date(2024, time.March, 31, 12, 30, 0), got, "anchor restored after clamped month")
}

func TestAddMonthsClamped_DayEqualsMinOfAnchorAndMonthLength(t *testing.T) {
	base := date(2024, time.January, 31, 9, 0, 0)
	for months := 0; months < 24; months++ {
		got := AddMonthsClamped(base, months, 31)
		want := LastDayOfMonth(got.Year(), got.Month())
		if 31 < want {
			want = 31
		}
		assert.Equal(t, want, got.Day(), "offset %d", months)
	}
}

func TestAddMonthsClamped_CrossesYearBoundary(t *testing.T) {
	base := date(2024, time.November, 30, 8, 0, 0)

	got := AddMonthsClamped(base, 3, 30)
	assert.Equal(t, date(2025, time.February, 28, 8, 0, 0), got)

	got = AddMonthsClamped(base, 14, 30)
	assert.Equal(t, date(2026, time.January, 30, 8, 0, 0), got)
}

func TestAddMonthsClamped_PreservesTimeOfDay(t *testing.T) {
	base := time.Date(2024, time.March, 31, 23, 59, 58, 123, time.UTC)
	got := AddMonthsClamped(base, 1, 31)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 58, got.Second())
	assert.Equal(t, 123, got.Nanosecond())
}

func TestAddMonthsClamped_ZeroMonthsKeepsMonth(t *testing.T) {
	base := date(2024, time.June, 10, 10, 0, 0)
	got := AddMonthsClamped(base, 0, 15)
	assert.Equal(t, date(2024, time.June, 15, 10, 0, 0), got, "anchor still applies at offset 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Next
// ──────────────────────────────────────────────────────────────────────────────

func TestNext_FirstOccurrenceUsesBaseWhenStillAhead(t *testing.T) {
	now := date(2024, time.January, 20, 10, 0, 0)
	base := date(2024, time.January, 31, 12, 0, 0)

	due, notify, exhausted := Next(base, 31, 3, 0, now)
	require.False(t, exhausted)
	assert.Equal(t, base, due)
	assert.Equal(t, date(2024, time.January, 28, 12, 0, 0), notify)
}

func TestNext_SkipsToNextMonthWhenNotifyElapsed(t *testing.T) {
	// Notify window for January (Jan 28) already passed.
	now := date(2024, time.January, 29, 10, 0, 0)
	base := date(2024, time.January, 31, 12, 0, 0)

	due, notify, exhausted := Next(base, 31, 3, 0, now)
	require.False(t, exhausted)
	assert.Equal(t, date(2024, time.February, 29, 12, 0, 0), due, "leap year clamp")
	assert.Equal(t, date(2024, time.February, 26, 12, 0, 0), notify)
}

func TestNext_RolloverForcesAdvance(t *testing.T) {
	// Offset 1 must advance even though the base's own notify instant is
	// still in the future.
	now := date(2024, time.January, 20, 10, 0, 0)
	base := date(2024, time.January, 31, 12, 0, 0)

	due, notify, exhausted := Next(base, 31, 3, 1, now)
	require.False(t, exhausted)
	assert.Equal(t, date(2024, time.February, 29, 12, 0, 0), due)
	assert.Equal(t, date(2024, time.February, 26, 12, 0, 0), notify)
}

func TestNext_ScenarioLeapYearAnchor(t *testing.T) {
	// Monthly reminder anchored on day 31: Jan 31 → Feb 29 (clamped) →
	// Mar 31 (anchor restored).
	now := date(2024, time.January, 20, 0, 0, 0)
	base := date(2024, time.January, 31, 12, 0, 0)

	first, _, _ := Next(base, 31, 3, 0, now)
	require.Equal(t, date(2024, time.January, 31, 12, 0, 0), first)

	now = first // fire happened around the due date
	second, _, _ := Next(first, 31, 3, 1, now)
	require.Equal(t, date(2024, time.February, 29, 12, 0, 0), second)

	now = second
	third, _, _ := Next(second, 31, 3, 1, now)
	require.Equal(t, date(2024, time.March, 31, 12, 0, 0), third)
}

func TestNext_NotifyStrictlyAfterNow(t *testing.T) {
	bases := []time.Time{
		date(2020, time.January, 31, 12, 0, 0),
		date(2024, time.February, 29, 0, 0, 0),
		date(2024, time.June, 1, 23, 59, 0),
		date(2025, time.December, 31, 6, 30, 0),
	}
	now := date(2024, time.June, 15, 12, 0, 0)

	for _, base := range bases {
		for _, advance := range []int{1, 3, 7} {
			_, notify, exhausted := Next(base, base.Day(), advance, 0, now)
			if !exhausted {
				assert.True(t, notify.After(now), "base %v advance %d", base, advance)
			}
		}
	}
}

func TestNext_Idempotent(t *testing.T) {
	now := date(2024, time.May, 10, 9, 0, 0)
	base := date(2024, time.March, 31, 12, 0, 0)

	due1, notify1, ex1 := Next(base, 31, 7, 0, now)
	due2, notify2, ex2 := Next(base, 31, 7, 0, now)

	assert.Equal(t, due1, due2)
	assert.Equal(t, notify1, notify2)
	assert.Equal(t, ex1, ex2)
}

func TestNext_NotifyDerivedFromDue(t *testing.T) {
	now := date(2024, time.May, 10, 9, 0, 0)
	base := date(2024, time.March, 31, 12, 0, 0)

	due, notify, _ := Next(base, 31, 7, 0, now)
	assert.Equal(t, due.AddDate(0, 0, -7), notify)
}

func TestNext_ExhaustedFallsBackToNextMonth(t *testing.T) {
	// A "now" more than two years past every candidate exhausts the search.
	base := date(2020, time.January, 31, 12, 0, 0)
	now := date(2026, time.June, 1, 0, 0, 0)

	due, notify, exhausted := Next(base, 31, 3, 0, now)
	require.True(t, exhausted)
	assert.Equal(t, date(2020, time.February, 29, 12, 0, 0), due, "one month past base, no further search")
	assert.Equal(t, date(2020, time.February, 26, 12, 0, 0), notify)
}

func TestNext_AdvanceCrossesMonthBoundary(t *testing.T) {
	// Due on the 1st with a 7 day lead: notify lands in the previous month.
	now := date(2024, time.May, 20, 0, 0, 0)
	base := date(2024, time.June, 1, 9, 0, 0)

	due, notify, exhausted := Next(base, 1, 7, 0, now)
	require.False(t, exhausted)
	assert.Equal(t, base, due)
	assert.Equal(t, date(2024, time.May, 25, 9, 0, 0), notify)
}
