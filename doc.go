// Package goalcast aggregates dated counts and projects them toward goals.
//
// Input rows such as "2021-01-05;417" are parsed into series keyed by
// calendar date. Series are combined into groups, transformed (running
// totals, day-over-day differences, zero back-fill) and extended with
// straight-line goal projections, either toward a fixed date or toward the
// day the current pace would reach the goal.
//
// # Packages
//
//   - timeseries: dated series, groups, parsing and transforms
//   - stats: level and velocity estimates over a series
//   - goal: goal projections and extrapolation
//   - pipeline: TOML plans chaining datasets and goals
//
// # Quick Start
//
//	s, _ := timeseries.Parse([]string{"doses"}, data, timeseries.LastField)
//	g, _ := timeseries.NewGroup(s)
//	g, est, _ := goal.New(goal.WithStep(1)).Extrapolate(g, "Goal", 1_000_000)
//	fmt.Println(est.EndDate)
//
// The goalcast command runs a plan from the shell:
//
//	goalcast run --plan doses.toml --format table
package goalcast
