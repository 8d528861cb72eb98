package clock

import "time"

// Clock supplies the reference instant for every date-based computation.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the given location.
type System struct {
	Location *time.Location
}

// NewSystem returns a system clock. A nil location means time.Local.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.Local
	}
	return System{Location: loc}
}

func (s System) Now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Fixed always returns the same instant. Used by tests and one-shot CLI runs.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// StartOfDay truncates t to midnight of its calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from today's date to t's date,
// both read in today's location. Negative values mean t lies in the past.
// Time of day is ignored, so DST transitions never shift the result.
func DaysUntil(t, today time.Time) int {
	t = t.In(today.Location())
	ty, tm, td := t.Date()
	ry, rm, rd := today.Date()
	target := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	ref := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	return int(target.Sub(ref).Hours() / 24)
}

// LoadLocation resolves a TIMEZONE setting. Empty or "Local" yields time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
