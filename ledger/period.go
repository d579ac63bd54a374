package ledger

import "time"

// Period is a half-open time window over calendar dates. The public
// constructors take inclusive calendar dates; the upper bound is
// widened to midnight of the following day so that any timestamp on
// the end date falls inside the window. A nil bound means unbounded.
type Period struct {
	start *time.Time
	until *time.Time // exclusive
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Between covers the calendar days from start through end, inclusive.
func Between(start, end time.Time) Period {
	s := startOfDay(start)
	u := startOfDay(end).AddDate(0, 0, 1)
	return Period{start: &s, until: &u}
}

// Since covers everything from the start date onward.
func Since(start time.Time) Period {
	s := startOfDay(start)
	return Period{start: &s}
}

// Through covers everything up to and including the end date.
func Through(end time.Time) Period {
	u := startOfDay(end).AddDate(0, 0, 1)
	return Period{until: &u}
}

// AllTime has no bounds.
func AllTime() Period {
	return Period{}
}

// Today covers the calendar day of the reference time.
func Today(now time.Time) Period {
	return Between(now, now)
}

// ThisWeek covers everything since the most recent Monday.
func ThisWeek(now time.Time) Period {
	offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
	return Since(now.AddDate(0, 0, -offset))
}

// ThisMonth covers everything since the first day of the current month.
func ThisMonth(now time.Time) Period {
	return Since(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if p.start != nil && t.Before(*p.start) {
		return false
	}
	if p.until != nil && !t.Before(*p.until) {
		return false
	}
	return true
}

// Start returns the lower bound, nil when unbounded.
func (p Period) Start() *time.Time {
	return p.start
}

// Until returns the exclusive upper bound, nil when unbounded.
func (p Period) Until() *time.Time {
	return p.until
}
