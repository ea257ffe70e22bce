package occurrence

import "time"

// searchBound caps the forward search at two years of monthly candidates so
// a clock far in the past cannot loop forever.
const searchBound = 24

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped advances t by the given number of whole months, pinning
// the result to anchorDay where the target month is long enough and clamping
// to its last day otherwise. The time of day is preserved. anchorDay itself
// is never altered; a clamped result does not shift later occurrences.
func AddMonthsClamped(t time.Time, months int, anchorDay int) time.Time {
	t = t.UTC()
	monthIndex := int(t.Month()) - 1 + months
	year := t.Year() + floorDiv(monthIndex, 12)
	month := time.Month(mod(monthIndex, 12) + 1)

	day := anchorDay
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Next computes the next occurrence of a monthly schedule anchored on
// anchorDay, starting the search monthOffsetStart months after baseDue.
// Creation passes 0 so baseDue itself is a candidate; rollover passes 1 to
// force advancing past the occurrence that just fired.
//
// The returned notifyAt is due minus advanceDays and is strictly after now,
// unless the search bound was exhausted: then the pair one month after
// baseDue is returned as a defensive fallback and exhausted is true.
func Next(baseDue time.Time, anchorDay, advanceDays, monthOffsetStart int, now time.Time) (due, notifyAt time.Time, exhausted bool) {
	offset := monthOffsetStart
	for i := 0; i < searchBound; i++ {
		candidate := AddMonthsClamped(baseDue, offset, anchorDay)
		sendAt := candidate.AddDate(0, 0, -advanceDays)
		if sendAt.After(now) {
			return candidate, sendAt, false
		}
		offset++
	}

	fallback := AddMonthsClamped(baseDue, 1, anchorDay)
	return fallback, fallback.AddDate(0, 0, -advanceDays), true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
