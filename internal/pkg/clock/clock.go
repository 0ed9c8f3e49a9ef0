package clock

import "time"

// Clock provides the time dependencies of the attendance engine. Services
// never call time.Now directly so that lateness and reconciliation logic stay
// deterministic under test.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
	// Today returns the current calendar date in UTC, truncated to midnight.
	Today() time.Time
	// LocalNow returns the current wall-clock time in the configured zone.
	// Used only by the reconciliation after-hours gate.
	LocalNow() time.Time
}

type realClock struct {
	loc *time.Location
}

// New returns a Clock whose LocalNow reports time in the given IANA zone.
// An unknown zone falls back to UTC.
func New(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *realClock) Today() time.Time {
	return DateOf(c.Now())
}

func (c *realClock) LocalNow() time.Time {
	return time.Now().In(c.loc)
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalendarDate returns t's wall-clock calendar date in t's own zone,
// expressed as the UTC-midnight value attendance dates are stored as.
// Unlike DateOf it does not convert to UTC first, so a local evening west
// of Greenwich still maps to the local day, not the next UTC day.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
	Local   time.Time
}

func (f *Fixed) Now() time.Time { return f.Instant.UTC() }

func (f *Fixed) Today() time.Time { return DateOf(f.Instant) }

func (f *Fixed) LocalNow() time.Time {
	if f.Local.IsZero() {
		return f.Instant
	}
	return f.Local
}
