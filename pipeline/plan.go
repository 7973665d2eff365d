// Package pipeline runs a plan of datasets through the engine: parse, transform,
// project, in order.
//
// Later datasets may aim at what earlier ones produced. A dataset can publish
// its current total (total_as) and an extrapolated goal can publish its
// projected end date (end_as); later goals read them through value_from and
// target_from. The values travel in State, never through the engine.
package pipeline

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/stats"
	"github.com/sartorproj/goalcast/timeseries"
)

// ErrInvalidPlan marks plan validation failures.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan lists datasets in processing order.
type Plan struct {
	// Step is the default distance in days between projected points.
	Step     int       `toml:"step"`
	Datasets []Dataset `toml:"dataset"`
}

// Dataset describes one input file and what to do with it.
type Dataset struct {
	Name       string   `toml:"name"`
	Title      string   `toml:"title"`
	File       string   `toml:"file"`
	Tags       []string `toml:"tags"`
	Decoder    string   `toml:"decoder"`
	Transforms []string `toml:"transforms"`
	TotalAs    string   `toml:"total_as"`
	Goals      []Goal   `toml:"goal"`
}

// Goal describes one projection attached to a dataset.
type Goal struct {
	Title string `toml:"title"`

	// Fixed target date, or the name of an end date published by an
	// earlier extrapolation.
	TargetDate string `toml:"target_date"`
	TargetFrom string `toml:"target_from"`

	// Goal value. With Percent it is the base the percentage applies to;
	// with ValueFrom it is the target of which the named total is already
	// achieved.
	Value     *int64  `toml:"value"`
	Percent   float64 `toml:"percent"`
	ValueFrom string  `toml:"value_from"`

	Extrapolate bool   `toml:"extrapolate"`
	Speed       string `toml:"speed"`
	Start       string `toml:"start"`
	Step        int    `toml:"step"`
	EndAs       string `toml:"end_as"`
}

// LoadPlan reads a plan from a TOML file.
func LoadPlan(path string) (*Plan, error) {
	var plan Plan
	if _, err := toml.DecodeFile(path, &plan); err != nil {
		return nil, errors.Wrapf(err, "failed to read plan %s", path)
	}
	if err := plan.Validate(); err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}
	return &plan, nil
}

// DecodePlan reads a plan from TOML text.
func DecodePlan(r io.Reader) (*Plan, error) {
	var plan Plan
	if _, err := toml.NewDecoder(r).Decode(&plan); err != nil {
		return nil, errors.Wrap(err, "failed to decode plan")
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func planError(hint, format string, args ...interface{}) error {
	err := errors.Mark(errors.Newf(format, args...), ErrInvalidPlan)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

// Validate checks the plan for mistakes that would otherwise surface halfway
// through a run: missing fields, unknown policy names and references to
// totals or end dates no earlier entry publishes.
func (p *Plan) Validate() error {
	if p.Step < 0 {
		return planError("step is a number of days, 0 means 1", "negative plan step %d", p.Step)
	}
	if len(p.Datasets) == 0 {
		return planError("add at least one [[dataset]] table", "plan has no datasets")
	}

	names := make(map[string]bool)
	totals := make(map[string]bool)
	ends := make(map[string]bool)

	for i, ds := range p.Datasets {
		if ds.Name == "" {
			return planError("", "dataset %d has no name", i)
		}
		if names[ds.Name] {
			return planError("dataset names must be unique", "duplicate dataset %q", ds.Name)
		}
		names[ds.Name] = true

		if ds.File == "" {
			return planError("", "dataset %q has no file", ds.Name)
		}
		if _, err := timeseries.ParseDecoder(ds.Decoder); err != nil {
			return errors.Mark(errors.Wrapf(err, "dataset %q", ds.Name), ErrInvalidPlan)
		}
		for _, tr := range ds.Transforms {
			if _, err := parseTransform(tr); err != nil {
				return errors.Mark(errors.Wrapf(err, "dataset %q", ds.Name), ErrInvalidPlan)
			}
		}

		for j, g := range ds.Goals {
			if err := g.validate(totals, ends); err != nil {
				return errors.Wrapf(err, "dataset %q goal %d", ds.Name, j)
			}
			if g.EndAs != "" {
				ends[g.EndAs] = true
			}
		}

		if ds.TotalAs != "" {
			totals[ds.TotalAs] = true
		}
	}
	return nil
}

func (g Goal) validate(totals, ends map[string]bool) error {
	if g.Title == "" {
		return planError("", "goal has no title")
	}
	if g.Step < 0 {
		return planError("step is a number of days, 0 means the plan step", "negative step %d", g.Step)
	}
	if g.Value == nil {
		return planError("set value", "goal %q has no value", g.Title)
	}
	if g.Percent < 0 {
		return planError("", "goal %q has a negative percent", g.Title)
	}
	if _, err := stats.ParseLevel(g.Start); err != nil {
		return errors.Mark(err, ErrInvalidPlan)
	}
	if g.ValueFrom != "" && g.Percent > 0 {
		return planError("value_from aims at a fixed value, drop percent or value_from",
			"goal %q combines value_from with percent", g.Title)
	}
	if g.ValueFrom != "" && !totals[g.ValueFrom] {
		return planError("value_from must name a total_as of an earlier dataset",
			"goal %q reads unknown total %q", g.Title, g.ValueFrom)
	}

	if g.Extrapolate {
		if g.TargetDate != "" || g.TargetFrom != "" {
			return planError("an extrapolated goal derives its own target date",
				"goal %q sets a target and extrapolate", g.Title)
		}
		if g.ValueFrom != "" {
			return planError("use a fixed value or percent with extrapolate",
				"goal %q combines value_from with extrapolate", g.Title)
		}
		if _, err := stats.ParseVelocity(g.Speed); err != nil {
			return errors.Mark(err, ErrInvalidPlan)
		}
		return nil
	}

	if g.EndAs != "" {
		return planError("only extrapolated goals publish an end date",
			"goal %q sets end_as without extrapolate", g.Title)
	}
	switch {
	case g.TargetDate != "" && g.TargetFrom != "":
		return planError("set one of target_date and target_from",
			"goal %q sets both target_date and target_from", g.Title)
	case g.TargetDate != "":
		if _, ok := timeseries.ParseDate(g.TargetDate); !ok {
			return planError("dates are written YYYY-MM-DD",
				"goal %q has invalid target_date %q", g.Title, g.TargetDate)
		}
	case g.TargetFrom != "":
		if !ends[g.TargetFrom] {
			return planError("target_from must name an end_as of an earlier goal",
				"goal %q reads unknown end date %q", g.Title, g.TargetFrom)
		}
	default:
		return planError("set target_date, target_from or extrapolate",
			"goal %q has no target", g.Title)
	}
	return nil
}

// step resolves the goal's step against the plan default.
func (p *Plan) step(g Goal) int {
	switch {
	case g.Step > 0:
		return g.Step
	case p.Step > 0:
		return p.Step
	default:
		return 1
	}
}

// tags falls back to the dataset title, then its name.
func (ds Dataset) tags() []string {
	if len(ds.Tags) > 0 {
		return ds.Tags
	}
	if strings.TrimSpace(ds.Title) != "" {
		return []string{ds.Title}
	}
	return []string{ds.Name}
}
