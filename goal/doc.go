// Package goal projects a group of series forward to a target.
//
// A projection is a straight line from the group's current total to a goal
// value, sampled every step days and attached to the group as a series of
// its own. Either the target date is known:
//
//	g, err = goal.FutureGoal(g, "Phase 1", phase1End, goal.Fixed(1_500_000), 1, stats.ValueAt)
//
// or it is derived from the recent velocity:
//
//	g, est, err := goal.FutureGoalExtrapolate(g, "At current pace", 4_000_000, 1,
//	    stats.WeeklyRate, stats.ValueAt)
//	if est.Reachable() {
//	    fmt.Println("done by", est.EndDate)
//	}
//
// The Estimate replaces a shared mutable end date: callers thread EndDate (and
// Group.Total) into the projections of sibling groups themselves.
//
// Interpolated values use truncating integer division, so the last point can
// fall short of the goal by a rounding remainder. A goal that is already met,
// or a velocity of zero or less, leaves the group unchanged.
package goal
