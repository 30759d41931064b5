package pattern

import "errors"

var (
	// ErrEmptyPattern is returned when a pattern is built without intervals.
	ErrEmptyPattern = errors.New("pattern: no intervals")
	// ErrInvalidFrequency is returned for a non-positive or malformed step.
	ErrInvalidFrequency = errors.New("pattern: invalid frequency")
	// ErrInvalidInterval is returned for an interval that ends before it starts.
	ErrInvalidInterval = errors.New("pattern: invalid interval")
	// ErrInvalidArgument is returned when boundary input cannot be coerced.
	ErrInvalidArgument = errors.New("pattern: invalid argument")
	// ErrUnrepresentable is returned when a frequency has no RRULE equivalent.
	ErrUnrepresentable = errors.New("pattern: not representable as a recurrence rule")
)
