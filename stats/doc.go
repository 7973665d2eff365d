// Package stats provides the level and velocity estimates used to project a
// group forward.
//
// Every estimate is a timeseries.ValueFunc: it reads one series at the group's
// final date and returns an integer. The projector sums it over all members.
//
// # Level ("start") estimates
//
// Where the projection line begins:
//
//	stats.ValueAt              // the exact value at the date, 0 if absent
//	stats.TrailingAverage(7)   // mean of the last 7 days, absent days count as 0
//
// # Velocity ("speed") estimates
//
// How fast a cumulative series grows per day. Both read the value at or before
// each probe date, so gaps in the data do not produce spurious jumps, and both
// start from yesterday because the latest day is often incomplete:
//
//	stats.WeeklyRate    // (v(d-1) - v(d-8)) / 7
//	stats.SixWeekTrend  // max of two 42-day deltas, one week apart, / 42
//
// All divisions truncate toward zero.
package stats
