package pattern

import (
	"fmt"
	"time"

	"github.com/jmortlock/timely/internal/phrase"
)

// Interval is an inclusive range of instants [First, Last].
type Interval struct {
	First time.Time
	Last  time.Time
}

// NewInterval returns [first, last], failing when first is after last.
func NewInterval(first, last time.Time) (Interval, error) {
	iv := Interval{First: first, Last: last}
	if !iv.valid() {
		return Interval{}, fmt.Errorf("%w: %s is after %s", ErrInvalidInterval,
			first.Format(time.RFC3339), last.Format(time.RFC3339))
	}
	return iv, nil
}

// Moment returns the single-instant interval [t, t].
func Moment(t time.Time) Interval {
	return Interval{First: t, Last: t}
}

// IsMoment reports whether the interval covers a single instant.
func (i Interval) IsMoment() bool {
	return i.First.Equal(i.Last)
}

// Equal reports whether both ends denote the same instants.
func (i Interval) Equal(other Interval) bool {
	return i.First.Equal(other.First) && i.Last.Equal(other.Last)
}

// Compare orders intervals by First.
func (i Interval) Compare(other Interval) int {
	return i.First.Compare(other.First)
}

// Contains reports whether t lies within [First, Last].
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.First) && !t.After(i.Last)
}

func (i Interval) String() string {
	if i.IsMoment() {
		return phrase.Moment(i.First)
	}
	return phrase.TimeSpan(i.First, i.Last)
}

func (i Interval) valid() bool {
	return !i.First.After(i.Last)
}
