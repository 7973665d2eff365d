package stats

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goalcast/timeseries"
)

var origin = civil.Date{Year: 2021, Month: 3, Day: 1}

// linear builds a cumulative series growing by perDay for n days from origin.
func linear(n int, perDay int64) *timeseries.Series {
	p := timeseries.NewPoints()
	for i := 0; i < n; i++ {
		p.Set(origin.AddDays(i), int64(i)*perDay)
	}
	return timeseries.New([]string{"linear"}, p)
}

func TestValueAt(t *testing.T) {
	s := linear(10, 5)

	assert.Equal(t, int64(45), ValueAt(s, origin.AddDays(9)))
	assert.Equal(t, int64(0), ValueAt(s, origin.AddDays(20)))
}

func TestTrailingAverage(t *testing.T) {
	p := timeseries.NewPoints()
	p.Set(origin, 10)
	p.Set(origin.AddDays(1), 20)
	p.Set(origin.AddDays(3), 30)
	s := timeseries.New([]string{"x"}, p)

	tests := []struct {
		name   string
		window int
		at     civil.Date
		want   int64
	}{
		{"single day", 1, origin.AddDays(3), 30},
		{"gap counts as zero", 3, origin.AddDays(3), 16},
		{"whole range", 4, origin.AddDays(3), 15},
		{"non-positive window", 0, origin.AddDays(1), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrailingAverage(tt.window)(s, tt.at))
		})
	}
}

func TestWeeklyRate(t *testing.T) {
	s := linear(30, 10)

	// Yesterday (280) minus seven days ago (220), over 7.
	assert.Equal(t, int64(8), WeeklyRate(s, origin.AddDays(29)))
}

func TestWeeklyRateTruncates(t *testing.T) {
	p := timeseries.NewPoints()
	p.Set(origin, 0)
	p.Set(origin.AddDays(7), 20)
	s := timeseries.New([]string{"x"}, p)

	// (20 - 0) / 7 truncates to 2.
	assert.Equal(t, int64(2), WeeklyRate(s, origin.AddDays(8)))
}

func TestWeeklyRateBridgesGaps(t *testing.T) {
	p := timeseries.NewPoints()
	p.Set(origin, 100)
	p.Set(origin.AddDays(5), 170)
	s := timeseries.New([]string{"x"}, p)

	// Yesterday (day 9) reads day 5, seven days ago (day 3) reads day 0.
	assert.Equal(t, int64(10), WeeklyRate(s, origin.AddDays(10)))
}

func TestSixWeekTrendTakesLargerWindow(t *testing.T) {
	p := timeseries.NewPoints()
	// Growth of 420 over the earlier window, but only 210 over the recent one.
	p.Set(origin, 0)
	p.Set(origin.AddDays(7), 210)
	p.Set(origin.AddDays(42), 420)
	p.Set(origin.AddDays(49), 420)
	s := timeseries.New([]string{"x"}, p)

	assert.Equal(t, int64(10), SixWeekTrend(s, origin.AddDays(50)))

	flat := linear(100, 3)
	assert.Equal(t, int64(3), SixWeekTrend(flat, origin.AddDays(99)))
}

func TestVelocityNegativeForShrinkingSeries(t *testing.T) {
	p := timeseries.NewPoints()
	for i := 0; i < 10; i++ {
		p.Set(origin.AddDays(i), int64(100-10*i))
	}
	s := timeseries.New([]string{"x"}, p)

	assert.Equal(t, int64(-10), Velocity(3)(s, origin.AddDays(9)))
}

func TestParseLevel(t *testing.T) {
	s := linear(10, 1)

	f, err := ParseLevel("value")
	require.NoError(t, err)
	assert.Equal(t, int64(9), f(s, origin.AddDays(9)))

	f, err = ParseLevel("average:2")
	require.NoError(t, err)
	assert.Equal(t, int64(8), f(s, origin.AddDays(9)))

	for _, bad := range []string{"average:0", "average:x", "median"} {
		_, err := ParseLevel(bad)
		require.Error(t, err, bad)
		assert.NotEmpty(t, errors.GetAllHints(err), bad)
	}
}

func TestParseVelocity(t *testing.T) {
	s := linear(60, 4)
	at := origin.AddDays(59)

	tests := []struct {
		name string
		want int64
	}{
		{"", 3},
		{"weekly", 3},
		{"six_weeks", 4},
		{"velocity:3", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseVelocity(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f(s, at))
		})
	}

	_, err := ParseVelocity("monthly")
	assert.Error(t, err)
}
