package timeseries

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/sets/treeset"
)

// Group is an ordered collection of series sharing one date axis and one
// "data as of" date.
//
// Updated is fixed when the group is built and survives every transform,
// including appending forecast series that run past it.
type Group struct {
	updated civil.Date
	series  []*Series
}

// NewGroup builds a group. Every member needs at least one data point.
func NewGroup(series ...*Series) (*Group, error) {
	if len(series) == 0 {
		return nil, ErrEmptyGroup
	}

	var updated civil.Date
	for i, s := range series {
		latest, err := s.LatestDate()
		if err != nil {
			return nil, errors.Wrapf(err, "series %d (%s)", i, s.Name())
		}
		if i == 0 || latest.After(updated) {
			updated = latest
		}
	}

	return &Group{updated: updated, series: slices.Clone(series)}, nil
}

// ParseGroup parses raw text into a single-series group.
func ParseGroup(tags []string, data string, decode RowDecoder) (*Group, error) {
	s, err := Parse(tags, data, decode)
	if err != nil {
		return nil, err
	}
	return NewGroup(s)
}

// Updated returns the "data as of" date.
func (g *Group) Updated() civil.Date {
	return g.updated
}

// Series returns the members in order.
func (g *Group) Series() []*Series {
	return slices.Clone(g.series)
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.series)
}

// Dates returns the union of all member dates in ascending order; this is
// the x-axis a renderer draws against.
func (g *Group) Dates() []civil.Date {
	set := treeset.NewWith(compareDates)
	for _, s := range g.series {
		s.points.Each(func(d civil.Date, _ int64) {
			set.Add(d)
		})
	}

	dates := make([]civil.Date, 0, set.Size())
	for _, v := range set.Values() {
		dates = append(dates, v.(civil.Date))
	}
	return dates
}

// FinalDate returns the latest date across all members.
func (g *Group) FinalDate() (civil.Date, error) {
	var final civil.Date
	found := false
	for _, s := range g.series {
		d, _, ok := s.points.Last()
		if !ok {
			continue
		}
		if !found || d.After(final) {
			final = d
			found = true
		}
	}
	if !found {
		return civil.Date{}, ErrEmptySeries
	}
	return final, nil
}

// LastSum returns the group's final date together with the sum over all
// members of start evaluated at that date.
func (g *Group) LastSum(start ValueFunc) (civil.Date, int64, error) {
	final, err := g.FinalDate()
	if err != nil {
		return civil.Date{}, 0, err
	}

	var sum int64
	for _, s := range g.series {
		sum += start(s, final)
	}
	return final, sum, nil
}

// Total returns the sum of the members' exact values at the final date.
func (g *Group) Total() (int64, error) {
	_, sum, err := g.LastSum((*Series).Value)
	return sum, err
}

// With returns a group with series appended. Updated is kept.
func (g *Group) With(series ...*Series) *Group {
	out := make([]*Series, 0, len(g.series)+len(series))
	out = append(out, g.series...)
	out = append(out, series...)
	return &Group{updated: g.updated, series: out}
}

// Accumulative accumulates every member up to the group's final date.
func (g *Group) Accumulative() (*Group, error) {
	final, err := g.FinalDate()
	if err != nil {
		return nil, err
	}
	return g.mapSeries(func(s *Series) *Series {
		return s.Accumulative(final)
	}), nil
}

// Diff differences every member.
func (g *Group) Diff() *Group {
	return g.mapSeries((*Series).Diff)
}

// Prepend back-fills every member down to start.
func (g *Group) Prepend(value int64, start civil.Date, step int) (*Group, error) {
	out := make([]*Series, len(g.series))
	for i, s := range g.series {
		p, err := s.Prepend(value, start, step)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return &Group{updated: g.updated, series: out}, nil
}

func (g *Group) mapSeries(fn func(*Series) *Series) *Group {
	out := make([]*Series, len(g.series))
	for i, s := range g.series {
		out[i] = fn(s)
	}
	return &Group{updated: g.updated, series: out}
}
