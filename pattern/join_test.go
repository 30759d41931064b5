package pattern

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_OverlappingDaily(t *testing.T) {
	a := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 1), date(2023, 1, 3)))
	b := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 2), date(2023, 1, 4)))

	joined, ok := a.Join(b).Get()
	require.True(t, ok)

	// {Jan 2, 3, 4} from b plus {Jan 1, 2, 3} from a.
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 1), date(2023, 1, 4)}}, joined.Ranges())
	assert.Equal(t, 24*time.Hour, joined.Frequency().Duration())
	assert.Equal(t, Days, joined.Frequency().Unit)
}

func TestJoin_AdjoiningWithinOneStep(t *testing.T) {
	a := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 1), date(2023, 1, 3)))
	b := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 4), date(2023, 1, 6)))

	joined, ok := a.Join(b).Get()
	require.True(t, ok)
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 1), date(2023, 1, 6)}}, joined.Ranges())
}

func TestJoin_Weekly(t *testing.T) {
	a := mustPattern(t, every(t, 1, Weeks), between(date(2023, 1, 2), date(2023, 1, 16)))
	b := mustPattern(t, every(t, 1, Weeks), between(date(2023, 1, 23), date(2023, 1, 30)))

	joined, ok := a.Join(b).Get()
	require.True(t, ok)
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 2), date(2023, 1, 30)}}, joined.Ranges())
	assert.Equal(t, "every Monday, Jan 2–Jan 30, 2023", joined.String())
}

func TestJoin_Monthly(t *testing.T) {
	a := mustPattern(t, every(t, 2, Months), between(date(2023, 1, 15), date(2023, 5, 15)))
	b := mustPattern(t, every(t, 2, Months), between(date(2023, 7, 15), date(2023, 9, 15)))

	joined, ok := a.Join(b).Get()
	require.True(t, ok)
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 15), date(2023, 9, 15)}}, joined.Ranges())
	assert.Equal(t, Frequency{Magnitude: 2, Unit: Months}, joined.Frequency())
}

func TestJoin_SingleMonthKeepsCalendarSteps(t *testing.T) {
	a := mustPattern(t, every(t, 1, Months), between(date(2023, 1, 15), date(2023, 3, 15)))
	b := mustPattern(t, every(t, 1, Months), between(date(2023, 4, 15), date(2023, 6, 15)))

	joined, ok := a.Join(b).Get()
	require.True(t, ok)
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 15), date(2023, 6, 15)}}, joined.Ranges())
	assert.Equal(t, Frequency{Magnitude: 1, Unit: Months}, joined.Frequency())
	assert.Equal(t, []time.Time{
		date(2023, 1, 15), date(2023, 2, 15), date(2023, 3, 15),
		date(2023, 4, 15), date(2023, 5, 15), date(2023, 6, 15),
	}, joined.Datetimes()[0])
	assert.True(t, joined.Match(flatten(a.Datetimes())))
	assert.True(t, joined.Match(flatten(b.Datetimes())))
	assert.Equal(t, "every 15th of the month, Jan 15–Jun 15, 2023", joined.String())
}

func TestJoin_NotJoinable(t *testing.T) {
	daily := every(t, 1, Days)

	tests := []struct {
		name     string
		receiver *Pattern
		other    *Pattern
	}{
		{
			name:     "different frequencies",
			receiver: mustPattern(t, daily, between(date(2023, 1, 1), date(2023, 1, 3))),
			other:    mustPattern(t, every(t, 2, Days), between(date(2023, 1, 1), date(2023, 1, 3))),
		},
		{
			name:     "too far apart",
			receiver: mustPattern(t, daily, between(date(2023, 1, 1), date(2023, 1, 3))),
			other:    mustPattern(t, daily, between(date(2023, 1, 10), date(2023, 1, 12))),
		},
		{
			name: "receiver has more intervals",
			receiver: mustPattern(t, daily,
				between(date(2023, 1, 1), date(2023, 1, 3)),
				between(date(2023, 1, 10), date(2023, 1, 12)),
			),
			other: mustPattern(t, daily, between(date(2023, 1, 2), date(2023, 1, 4))),
		},
		{
			name:     "other has more paired intervals",
			receiver: mustPattern(t, daily, between(date(2023, 1, 1), date(2023, 1, 10))),
			other: mustPattern(t, daily,
				between(date(2023, 1, 2), date(2023, 1, 3)),
				between(date(2023, 1, 5), date(2023, 1, 6)),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.receiver.Join(tt.other).IsAbsent())
		})
	}
}

func TestJoin_IsAsymmetric(t *testing.T) {
	daily := every(t, 1, Days)
	two := mustPattern(t, daily,
		between(date(2023, 1, 1), date(2023, 1, 3)),
		between(date(2023, 1, 10), date(2023, 1, 12)),
	)
	one := mustPattern(t, daily, between(date(2023, 1, 2), date(2023, 1, 4)))

	assert.True(t, two.Join(one).IsAbsent())

	// The scan stops at the first unpaired series; the unpaired interval of
	// two is dropped.
	joined, ok := one.Join(two).Get()
	require.True(t, ok)
	assert.Equal(t, [][2]time.Time{{date(2023, 1, 1), date(2023, 1, 4)}}, joined.Ranges())
}

func TestJoin_LeavesOperandsAlone(t *testing.T) {
	a := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 1), date(2023, 1, 3)))
	b := mustPattern(t, every(t, 1, Days), between(date(2023, 1, 2), date(2023, 1, 4)))
	aBefore, bBefore := a.Ranges(), b.Ranges()

	require.True(t, a.Join(b).IsPresent())

	assert.Equal(t, aBefore, a.Ranges())
	assert.Equal(t, bBefore, b.Ranges())
}

func TestJoin_LogsRefusal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := New([]Interval{Moment(date(2023, 1, 1))}, every(t, 1, Days), WithLogger(logger))
	require.NoError(t, err)
	b := mustPattern(t, every(t, 1, Weeks), Moment(date(2023, 1, 1)))

	assert.True(t, a.Join(b).IsAbsent())
	assert.Contains(t, buf.String(), "frequencies differ")
}
