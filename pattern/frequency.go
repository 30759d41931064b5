package pattern

import (
	"fmt"
	"math"
	"time"

	"github.com/jmortlock/timely/internal/calendar"
	"github.com/jmortlock/timely/internal/phrase"
)

// Unit is a calendar unit a Frequency steps by.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

const day = 24 * time.Hour

var unitInfo = [...]struct {
	name    string
	nominal time.Duration
}{
	Seconds: {"second", time.Second},
	Minutes: {"minute", time.Minute},
	Hours:   {"hour", time.Hour},
	Days:    {"day", day},
	Weeks:   {"week", 7 * day},
	Months:  {"month", 30 * day},
	Years:   {"year", 365 * day},
}

// String returns the singular unit name ("month").
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitInfo[u].name
}

// Nominal returns the fixed length used when a unit has to be expressed as a
// time.Duration. Months and years are averages and drift when stepped.
func (u Unit) Nominal() time.Duration {
	if !u.valid() {
		return 0
	}
	return unitInfo[u].nominal
}

func (u Unit) valid() bool {
	return u >= Seconds && u <= Years
}

// Frequency is the step between the instants of a pattern: a magnitude of a
// calendar unit ("3 months"), or a raw duration that was only classified by
// its nearest unit.
type Frequency struct {
	Magnitude int
	Unit      Unit

	// raw is the fixed step for duration-built frequencies; zero means the
	// frequency steps in calendar units.
	raw time.Duration
}

// Every returns an exact calendar frequency of n units.
func Every(n int, unit Unit) (Frequency, error) {
	f := Frequency{Magnitude: n, Unit: unit}
	if !f.valid() {
		return Frequency{}, fmt.Errorf("%w: %d %s", ErrInvalidFrequency, n, unit)
	}
	return f, nil
}

// FromDuration returns a frequency stepping by the fixed duration d. Its Unit
// is the largest unit whose nominal length fits in d.
func FromDuration(d time.Duration) (Frequency, error) {
	if d <= 0 {
		return Frequency{}, fmt.Errorf("%w: duration %s", ErrInvalidFrequency, d)
	}
	for u := Years; u >= Seconds; u-- {
		if d >= u.Nominal() {
			return Frequency{Magnitude: int(d / u.Nominal()), Unit: u, raw: d}, nil
		}
	}
	return Frequency{Unit: Seconds, raw: d}, nil
}

// Duration returns the length of one step.
func (f Frequency) Duration() time.Duration {
	if f.raw != 0 {
		return f.raw
	}
	return time.Duration(f.Magnitude) * f.Unit.Nominal()
}

// Exact reports whether the frequency steps in calendar units rather than by
// a fixed duration.
func (f Frequency) Exact() bool {
	return f.raw == 0
}

// Equal reports whether both frequencies have the same step duration.
func (f Frequency) Equal(other Frequency) bool {
	return f.Duration() == other.Duration()
}

// Step returns t advanced by k steps; k may be negative. Calendar steps are
// taken from t in one move, so a series started on the 31st returns to the
// 31st in every month long enough to have one.
func (f Frequency) Step(t time.Time, k int) time.Time {
	if f.raw != 0 {
		return t.Add(time.Duration(k) * f.raw)
	}

	n := k * f.Magnitude
	switch f.Unit {
	case Years:
		return calendar.AddYears(t, n)
	case Months:
		return calendar.AddMonths(t, n)
	case Weeks:
		return calendar.AddDays(t, 7*n)
	case Days:
		return calendar.AddDays(t, n)
	default:
		return t.Add(time.Duration(n) * f.Unit.Nominal())
	}
}

// whole reports whether the step is a whole number of its unit. Raw
// durations such as 36h or 10 days only approximate their unit.
func (f Frequency) whole() bool {
	return f.raw == 0 || f.raw == time.Duration(f.Magnitude)*f.Unit.Nominal()
}

// String renders the frequency as "every day" or "every 3 months". A raw
// duration that is not a whole number of its unit is printed as is.
func (f Frequency) String() string {
	if !f.whole() {
		return "every " + f.raw.String()
	}
	if f.Magnitude == 1 {
		return "every " + f.Unit.String()
	}
	return "every " + phrase.Count(f.Magnitude, f.Unit.String())
}

func (f Frequency) valid() bool {
	if f.raw != 0 {
		return f.raw > 0
	}
	if f.Magnitude <= 0 || !f.Unit.valid() {
		return false
	}
	// Duration must not overflow.
	return int64(f.Magnitude) <= math.MaxInt64/int64(f.Unit.Nominal())
}
