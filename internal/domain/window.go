package domain

import "time"

// The last-minute sub-window covers Dec 18 through Dec 25.
const (
	lastMinuteStartDay = 18
	lastMinuteEndDay   = 26
)

// Window is a time range used to scope fetches and reductions.
// Start is always inclusive; End is inclusive unless ExclusiveEnd is set.
type Window struct {
	Start        time.Time
	End          time.Time
	ExclusiveEnd bool
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if w.ExclusiveEnd {
		return t.Before(w.End)
	}
	return !t.After(w.End)
}

// YearWindow returns the full calendar-year window for the given year:
// Jan 1 00:00:00.000 through Dec 31 23:59:59.999 UTC, both inclusive.
func YearWindow(year int) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
	}
}

// LastMinuteWindow returns the near-deadline sub-window for the given
// year: Dec 18 00:00:00.000 inclusive through Dec 26 00:00:00.000
// exclusive, UTC.
func LastMinuteWindow(year int) Window {
	return Window{
		Start:        time.Date(year, time.December, lastMinuteStartDay, 0, 0, 0, 0, time.UTC),
		End:          time.Date(year, time.December, lastMinuteEndDay, 0, 0, 0, 0, time.UTC),
		ExclusiveEnd: true,
	}
}

// DayWindow returns the window covering the UTC calendar day of t:
// 00:00:00.000 through 23:59:59.999, both inclusive.
func DayWindow(t time.Time) Window {
	y, m, d := t.UTC().Date()
	return Window{
		Start: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y, m, d, 23, 59, 59, 999_000_000, time.UTC),
	}
}
