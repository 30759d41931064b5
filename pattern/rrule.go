package pattern

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// RuleSet expresses the pattern as an rrule-go set holding one rule per
// interval: DTSTART is the interval start, UNTIL its end, FREQ and INTERVAL
// come from the frequency. Duration-built frequencies become SECONDLY rules.
//
// RRULE semantics differ from Datetimes in one place: a MONTHLY or YEARLY
// rule skips months that lack the start day (Jan 31 has no February
// occurrence), where Datetimes clamps to the end of the month.
func (p *Pattern) RuleSet() (*rrule.Set, error) {
	freq, interval, err := ruleFrequency(p.frequency)
	if err != nil {
		return nil, err
	}

	set := &rrule.Set{}
	for _, iv := range p.intervals {
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:     freq,
			Interval: interval,
			Dtstart:  iv.First,
			Until:    iv.Last,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build rule for %s: %w", iv, err)
		}
		set.RRule(r)
	}
	return set, nil
}

func ruleFrequency(f Frequency) (rrule.Frequency, int, error) {
	if !f.Exact() {
		d := f.Duration()
		if d%time.Second != 0 {
			return 0, 0, fmt.Errorf("%w: step of %s", ErrUnrepresentable, d)
		}
		return rrule.SECONDLY, int(d / time.Second), nil
	}

	switch f.Unit {
	case Years:
		return rrule.YEARLY, f.Magnitude, nil
	case Months:
		return rrule.MONTHLY, f.Magnitude, nil
	case Weeks:
		return rrule.WEEKLY, f.Magnitude, nil
	case Days:
		return rrule.DAILY, f.Magnitude, nil
	case Hours:
		return rrule.HOURLY, f.Magnitude, nil
	case Minutes:
		return rrule.MINUTELY, f.Magnitude, nil
	case Seconds:
		return rrule.SECONDLY, f.Magnitude, nil
	}
	return 0, 0, fmt.Errorf("%w: unit %s", ErrUnrepresentable, f.Unit)
}
