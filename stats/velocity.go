package stats

import (
	"cloud.google.com/go/civil"

	"github.com/sartorproj/goalcast/timeseries"
)

const (
	week     = 7
	sixWeeks = 6 * week
)

// Velocity returns the average daily growth over the window days ending
// yesterday: (v(d-1) - v(d-1-window)) / window.
func Velocity(window int) timeseries.ValueFunc {
	if window < 1 {
		window = 1
	}
	return func(s *timeseries.Series, d civil.Date) int64 {
		return delta(s, d.AddDays(-1), window) / int64(window)
	}
}

// WeeklyRate is the unsmoothed growth per day over the last week:
// (v(d-1) - v(d-7)) / 7.
func WeeklyRate(s *timeseries.Series, d civil.Date) int64 {
	return delta(s, d.AddDays(-1), week-1) / week
}

// SixWeekTrend is the growth per day over six weeks, taking the larger of the
// windows ending yesterday and a week before that so a single noisy day
// cannot drag the trend down.
func SixWeekTrend(s *timeseries.Series, d civil.Date) int64 {
	end := d.AddDays(-1)
	recent := delta(s, end, sixWeeks)
	earlier := delta(s, end.AddDays(-week), sixWeeks)
	return max(recent, earlier) / sixWeeks
}

// delta is the change of s over window days ending at end.
func delta(s *timeseries.Series, end civil.Date, window int) int64 {
	return s.ValueAtOrBefore(end) - s.ValueAtOrBefore(end.AddDays(-window))
}
