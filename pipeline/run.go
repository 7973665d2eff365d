package pipeline

import (
	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/goal"
	"github.com/sartorproj/goalcast/internal/logger"
	"github.com/sartorproj/goalcast/internal/source"
	"github.com/sartorproj/goalcast/stats"
	"github.com/sartorproj/goalcast/timeseries"
)

// State holds the values datasets publish for later ones.
type State struct {
	Totals   map[string]int64      `json:"totals" yaml:"totals"`
	EndDates map[string]civil.Date `json:"end_dates" yaml:"end_dates"`
}

func newState() State {
	return State{
		Totals:   make(map[string]int64),
		EndDates: make(map[string]civil.Date),
	}
}

// Chart is one processed dataset with its projections appended.
type Chart struct {
	Name      string
	Title     string
	Group     *timeseries.Group
	Estimates map[string]goal.Estimate
}

// Report is the outcome of a run.
type Report struct {
	Charts []Chart
	State  State
}

// Run processes the plan's datasets in order, reading files from src.
func Run(plan *Plan, src source.Opener) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	log := logger.ComponentLogger("pipeline")
	report := &Report{State: newState()}

	for _, ds := range plan.Datasets {
		chart, err := runDataset(plan, ds, src, &report.State)
		if err != nil {
			log.Errorw("Dataset failed",
				logger.FieldDataset, ds.Name,
				logger.FieldError, err)
			return nil, errors.Wrapf(err, "dataset %q", ds.Name)
		}
		log.Infow("Dataset processed",
			logger.FieldDataset, ds.Name,
			logger.FieldSeries, chart.Group.Len())
		report.Charts = append(report.Charts, chart)
	}
	return report, nil
}

func runDataset(plan *Plan, ds Dataset, src source.Opener, state *State) (Chart, error) {
	log := logger.ComponentLogger("pipeline")

	decode, err := timeseries.ParseDecoder(ds.Decoder)
	if err != nil {
		return Chart{}, err
	}

	g, err := readGroup(src, ds, decode)
	if err != nil {
		return Chart{}, err
	}

	for _, expr := range ds.Transforms {
		tr, err := parseTransform(expr)
		if err != nil {
			return Chart{}, err
		}
		if g, err = tr(g); err != nil {
			return Chart{}, errors.Wrapf(err, "transform %q", expr)
		}
	}

	if ds.TotalAs != "" {
		total, err := g.Total()
		if err != nil {
			return Chart{}, err
		}
		state.Totals[ds.TotalAs] = total
		log.Debugw("Total recorded",
			logger.FieldDataset, ds.Name,
			logger.FieldTotal, total)
	}

	title := ds.Title
	if title == "" {
		title = ds.Name
	}
	chart := Chart{Name: ds.Name, Title: title, Estimates: make(map[string]goal.Estimate)}

	// Each goal starts where the previous one ends.
	for _, gl := range ds.Goals {
		projected, est, ok, err := runGoal(plan, gl, g, state)
		if err != nil {
			return Chart{}, errors.Wrapf(err, "goal %q", gl.Title)
		}
		if !ok {
			continue
		}
		g = projected
		if gl.Extrapolate {
			chart.Estimates[gl.Title] = est
		}
	}

	chart.Group = g
	return chart, nil
}

func readGroup(src source.Opener, ds Dataset, decode timeseries.RowDecoder) (*timeseries.Group, error) {
	r, err := src.Open(ds.File)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := timeseries.ParseReader(ds.tags(), r, decode)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", ds.File)
	}
	first, err := s.EarliestDate()
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", ds.File)
	}

	logger.ComponentLogger("pipeline").Debugw("Dataset read",
		logger.FieldFile, ds.File,
		logger.FieldDate, first.String(),
		logger.FieldCount, s.Len())
	return timeseries.NewGroup(s)
}

// runGoal reports ok=false when the goal was skipped.
func runGoal(plan *Plan, gl Goal, g *timeseries.Group, state *State) (*timeseries.Group, goal.Estimate, bool, error) {
	log := logger.ComponentLogger("pipeline")

	start, err := stats.ParseLevel(gl.Start)
	if err != nil {
		return nil, goal.Estimate{}, false, err
	}
	opts := []goal.Option{goal.WithStep(plan.step(gl)), goal.WithStart(start)}

	if gl.Extrapolate {
		speed, err := stats.ParseVelocity(gl.Speed)
		if err != nil {
			return nil, goal.Estimate{}, false, err
		}
		p := goal.New(append(opts, goal.WithSpeed(speed))...)

		_, current, err := g.LastSum(start)
		if err != nil {
			return nil, goal.Estimate{}, false, err
		}
		projected, est, err := p.Extrapolate(g, gl.Title, goalFunc(gl, state)(current))
		if err != nil {
			return nil, goal.Estimate{}, false, err
		}
		if gl.EndAs != "" && est.Reachable() {
			state.EndDates[gl.EndAs] = est.EndDate
		}
		return projected, est, true, nil
	}

	target, ok := targetDate(gl, state)
	if !ok {
		log.Warnw("Target date not available, goal skipped",
			logger.FieldTitle, gl.Title,
			logger.FieldEndDate, gl.TargetFrom)
		return nil, goal.Estimate{}, false, nil
	}
	projected, err := goal.New(opts...).FutureGoal(g, gl.Title, target, goalFunc(gl, state))
	if err != nil {
		return nil, goal.Estimate{}, false, err
	}
	return projected, goal.Estimate{}, true, nil
}

func targetDate(gl Goal, state *State) (civil.Date, bool) {
	if gl.TargetFrom != "" {
		d, ok := state.EndDates[gl.TargetFrom]
		return d, ok
	}
	return timeseries.ParseDate(gl.TargetDate)
}

func goalFunc(gl Goal, state *State) goal.Func {
	value := *gl.Value
	switch {
	case gl.ValueFrom != "":
		return goal.Remaining(value, state.Totals[gl.ValueFrom])
	case gl.Percent > 0:
		return goal.Percent(value, gl.Percent)
	default:
		return goal.Fixed(value)
	}
}
