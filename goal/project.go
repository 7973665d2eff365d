package goal

import (
	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/internal/logger"
	"github.com/sartorproj/goalcast/timeseries"
)

// Estimate describes the outcome of an extrapolation.
type Estimate struct {
	FinalDate civil.Date // last observed date of the group
	Current   int64      // level at FinalDate
	Speed     int64      // summed velocity at FinalDate
	Goal      int64

	// EndDate is set only when the goal is neither met nor unreachable.
	EndDate civil.Date

	Met         bool // Current already at or above Goal
	Unreachable bool // Speed is zero or negative
}

// Reachable reports whether EndDate holds a projected date.
func (e Estimate) Reachable() bool {
	return !e.Met && !e.Unreachable
}

// FutureGoal appends a series titled title that runs in a straight line from
// the group's current level to the goal at target, one point every step days.
// Nothing is appended when target is not after the group's final date.
func FutureGoal(
	g *timeseries.Group,
	title string,
	target civil.Date,
	goal Func,
	step int,
	start timeseries.ValueFunc,
) (*timeseries.Group, error) {
	if step <= 0 {
		return nil, errors.Wrapf(timeseries.ErrInvalidStep, "goal %q", title)
	}

	final, sum, err := g.LastSum(start)
	if err != nil {
		return nil, errors.Wrapf(err, "goal %q", title)
	}

	goalValue := goal(sum)
	points := Trajectory(final, sum, target, goalValue, step)

	log := logger.ComponentLogger("goal")
	if points.Len() == 0 {
		log.Debugw("Target not after final date, nothing to project",
			logger.FieldTitle, title,
			logger.FieldDate, final.String(),
			logger.FieldEndDate, target.String())
		return g, nil
	}

	log.Debugw("Projected goal",
		logger.FieldTitle, title,
		logger.FieldGoal, goalValue,
		logger.FieldEndDate, target.String(),
		logger.FieldCount, points.Len())

	return g.With(timeseries.New([]string{title}, points)), nil
}

// Trajectory samples the line from (from, fromValue) to (to, goalValue)
// every step days, starting one step after from. The walk stops at the first
// date not before to, which may lie past to when step does not divide the
// distance.
func Trajectory(from civil.Date, fromValue int64, to civil.Date, goalValue int64, step int) *timeseries.Points {
	points := timeseries.NewPoints()
	if step <= 0 {
		return points
	}

	allDays := int64(to.DaysSince(from))
	for running := from; running.Before(to); {
		running = running.AddDays(step)
		elapsed := int64(running.DaysSince(from))
		points.Set(running, fromValue+(goalValue-fromValue)*elapsed/allDays)
	}
	return points
}

// FutureGoalExtrapolate derives the date at which the group reaches goal at
// its current velocity and projects toward it with FutureGoal.
//
// speed is summed over all members at the final date. A goal that is already
// met, or a velocity that is not positive, returns the group unchanged with
// Met or Unreachable set on the Estimate.
func FutureGoalExtrapolate(
	g *timeseries.Group,
	title string,
	goal int64,
	step int,
	speed timeseries.ValueFunc,
	start timeseries.ValueFunc,
) (*timeseries.Group, Estimate, error) {
	if step <= 0 {
		return nil, Estimate{}, errors.Wrapf(timeseries.ErrInvalidStep, "goal %q", title)
	}

	final, sum, err := g.LastSum(start)
	if err != nil {
		return nil, Estimate{}, errors.Wrapf(err, "goal %q", title)
	}

	est := Estimate{FinalDate: final, Current: sum, Goal: goal}
	for _, s := range g.Series() {
		est.Speed += speed(s, final)
	}

	log := logger.ComponentLogger("goal")
	if sum >= goal {
		est.Met = true
		log.Infow("Goal already met",
			logger.FieldTitle, title,
			logger.FieldGoal, goal,
			logger.FieldTotal, sum)
		return g, est, nil
	}
	if est.Speed <= 0 {
		est.Unreachable = true
		log.Warnw("No upward trend, goal cannot be reached",
			logger.FieldTitle, title,
			logger.FieldGoal, goal,
			logger.FieldSpeed, est.Speed)
		return g, est, nil
	}

	daysNeeded := (goal - sum) / est.Speed
	est.EndDate = final.AddDays(step * int(daysNeeded))

	out, err := FutureGoal(g, title, est.EndDate, Fixed(goal), step, start)
	if err != nil {
		return nil, Estimate{}, err
	}
	return out, est, nil
}
