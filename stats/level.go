package stats

import (
	"cloud.google.com/go/civil"

	"github.com/sartorproj/goalcast/timeseries"
)

// ValueAt returns the exact value of s at d, or 0 when d has no entry.
func ValueAt(s *timeseries.Series, d civil.Date) int64 {
	return s.Value(d)
}

// TrailingAverage returns the mean of the exact values over the window days
// ending at d. Days without an entry count as 0. A window below 1 is treated
// as 1.
func TrailingAverage(window int) timeseries.ValueFunc {
	if window < 1 {
		window = 1
	}
	return func(s *timeseries.Series, d civil.Date) int64 {
		var sum int64
		for i := 0; i < window; i++ {
			sum += s.Value(d.AddDays(-i))
		}
		return sum / int64(window)
	}
}
