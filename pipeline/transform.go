package pipeline

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/timeseries"
)

type transform func(*timeseries.Group) (*timeseries.Group, error)

// parseTransform resolves "accumulative", "diff" or
// "prepend:<value>:<YYYY-MM-DD>[:<step>]".
func parseTransform(expr string) (transform, error) {
	name := strings.ToLower(strings.TrimSpace(expr))
	switch {
	case name == "accumulative":
		return func(g *timeseries.Group) (*timeseries.Group, error) {
			return g.Accumulative()
		}, nil
	case name == "diff":
		return func(g *timeseries.Group) (*timeseries.Group, error) {
			return g.Diff(), nil
		}, nil
	case strings.HasPrefix(name, "prepend:"):
		return parsePrepend(strings.TrimPrefix(name, "prepend:"))
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown transform %q", expr),
			"use one of: accumulative, diff, prepend:<value>:<YYYY-MM-DD>[:<step>]")
	}
}

func parsePrepend(args string) (transform, error) {
	hint := "prepend takes a value, a start date and an optional step, e.g. prepend:0:2020-12-20:1"
	parts := strings.Split(args, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, errors.WithHint(errors.Newf("invalid prepend %q", args), hint)
	}

	value, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "invalid prepend value %q", parts[0]), hint)
	}
	start, ok := timeseries.ParseDate(parts[1])
	if !ok {
		return nil, errors.WithHint(errors.Newf("invalid prepend date %q", parts[1]), hint)
	}
	step := 1
	if len(parts) == 3 {
		step, err = strconv.Atoi(parts[2])
		if err != nil || step < 1 {
			return nil, errors.WithHint(errors.Newf("invalid prepend step %q", parts[2]), hint)
		}
	}

	return func(g *timeseries.Group) (*timeseries.Group, error) {
		return g.Prepend(value, start, step)
	}, nil
}
