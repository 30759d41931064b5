package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// Build is the permissive constructor. intervals may be a single Interval,
// time.Time, [2]time.Time or string, or a slice of any of these; freq may be
// a Frequency, a time.Duration or a string accepted by ParseFrequency.
// Strings are read in UTC.
func Build(intervals any, freq any, opts ...Option) (*Pattern, error) {
	ivs, err := intervalsOf(intervals)
	if err != nil {
		return nil, err
	}
	f, err := frequencyOf(freq)
	if err != nil {
		return nil, err
	}
	return New(ivs, f, opts...)
}

// MatchValues is Match for loosely typed input. A value that cannot be read
// as a time is never covered, so it makes the match fail.
func (p *Pattern) MatchValues(values ...any) bool {
	candidates := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := ToTime(v)
		if err != nil {
			p.logger.Debug("match: unreadable candidate", "value", v, "err", err)
			return false
		}
		candidates = append(candidates, t)
	}
	return p.Match(candidates)
}

// ToTime coerces a time.Time, *time.Time, Unix seconds or a string accepted
// by ParseTime (read in UTC).
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidArgument)
		}
		return *t, nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case string:
		return ParseTime(t, time.UTC)
	}
	return time.Time{}, fmt.Errorf("%w: %T is not a time", ErrInvalidArgument, v)
}

// ToInterval coerces an Interval, a single time (a moment), a [2]time.Time
// pair or a string accepted by ParseInterval (read in UTC).
func ToInterval(v any) (Interval, error) {
	switch iv := v.(type) {
	case Interval:
		if !iv.valid() {
			return Interval{}, fmt.Errorf("%w: %s is after %s", ErrInvalidInterval, iv.First, iv.Last)
		}
		return iv, nil
	case [2]time.Time:
		return NewInterval(iv[0], iv[1])
	case string:
		return ParseInterval(iv, time.UTC)
	}
	t, err := ToTime(v)
	if err != nil {
		return Interval{}, err
	}
	return Moment(t), nil
}

func intervalsOf(v any) ([]Interval, error) {
	var items []any
	switch list := v.(type) {
	case []Interval:
		return list, nil
	case []any:
		items = list
	case []time.Time:
		items = toAny(list)
	case [][2]time.Time:
		items = toAny(list)
	case []string:
		items = toAny(list)
	default:
		items = []any{v}
	}

	out := make([]Interval, 0, len(items))
	for i, item := range items {
		iv, err := ToInterval(item)
		if err != nil {
			return nil, fmt.Errorf("interval %d: %w", i, err)
		}
		out = append(out, iv)
	}
	return out, nil
}

func frequencyOf(v any) (Frequency, error) {
	switch f := v.(type) {
	case Frequency:
		return f, nil
	case time.Duration:
		return FromDuration(f)
	case string:
		return ParseFrequency(f)
	}
	return Frequency{}, fmt.Errorf("%w: %T is not a frequency", ErrInvalidFrequency, v)
}

func toAny[T any](list []T) []any {
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = v
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads RFC 3339 and ISO 8601 date or date-time strings, and
// iCalendar DATE ("20230102") and DATE-TIME ("20230102T090000Z") values.
// Values without an offset are read in loc, or UTC when loc is nil.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty time", ErrInvalidArgument)
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	prop := ical.NewProp(ical.PropDateTimeStart)
	prop.Value = value
	if len(value) == len("20060102") {
		prop.SetValueType(ical.ValueDate)
	}
	t, err := prop.DateTime(loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unrecognised time %q", ErrInvalidArgument, value)
	}
	return t, nil
}

// ParseInterval reads "start/end" (ISO 8601 interval notation) or a single
// time, which yields a moment.
func ParseInterval(value string, loc *time.Location) (Interval, error) {
	first, last, found := strings.Cut(value, "/")
	start, err := ParseTime(first, loc)
	if err != nil {
		return Interval{}, err
	}
	if !found {
		return Moment(start), nil
	}
	end, err := ParseTime(last, loc)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

var frequencyRE = regexp.MustCompile(`^(?:every\s+)?(\d+)?\s*([a-z]+)$`)

var unitNames = map[string]Unit{
	"s": Seconds, "sec": Seconds, "secs": Seconds, "second": Seconds, "seconds": Seconds,
	"m": Minutes, "min": Minutes, "mins": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hr": Hours, "hrs": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
	"w": Weeks, "wk": Weeks, "wks": Weeks, "week": Weeks, "weeks": Weeks,
	"mo": Months, "mon": Months, "month": Months, "months": Months,
	"y": Years, "yr": Years, "yrs": Years, "year": Years, "years": Years,
}

// ParseFrequency reads a calendar frequency such as "3 months", "every week"
// or "2w". Anything else is tried as a Go duration ("1h30m", "90m30s") and
// becomes a duration-built frequency.
func ParseFrequency(value string) (Frequency, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if m := frequencyRE.FindStringSubmatch(value); m != nil {
		if unit, ok := unitNames[m[2]]; ok {
			n := 1
			if m[1] != "" {
				var err error
				if n, err = strconv.Atoi(m[1]); err != nil {
					return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, value)
				}
			}
			return Every(n, unit)
		}
	}

	d, err := time.ParseDuration(strings.TrimPrefix(value, "every "))
	if err != nil {
		return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, value)
	}
	return FromDuration(d)
}
