package stats

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/timeseries"
)

// ParseLevel resolves a level estimate by name: "value" or "average:<days>".
func ParseLevel(name string) (timeseries.ValueFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "value":
		return ValueAt, nil
	case strings.HasPrefix(name, "average:"):
		n, err := windowArg(name, "average:")
		if err != nil {
			return nil, err
		}
		return TrailingAverage(n), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown start policy %q", name),
			"use one of: value, average:<days>")
	}
}

// ParseVelocity resolves a velocity estimate by name: "weekly", "six_weeks"
// or "velocity:<days>".
func ParseVelocity(name string) (timeseries.ValueFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "weekly":
		return WeeklyRate, nil
	case name == "six_weeks":
		return SixWeekTrend, nil
	case strings.HasPrefix(name, "velocity:"):
		n, err := windowArg(name, "velocity:")
		if err != nil {
			return nil, err
		}
		return Velocity(n), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown speed policy %q", name),
			"use one of: weekly, six_weeks, velocity:<days>")
	}
}

func windowArg(name, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
	if err != nil || n < 1 {
		return 0, errors.WithHint(
			errors.Newf("invalid window in %q", name),
			"the window is a positive number of days")
	}
	return n, nil
}
