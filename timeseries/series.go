package timeseries

import (
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
)

// Series is a named, date-ordered series of integer observations.
//
// A Series is immutable: every transform returns a new Series and leaves the
// receiver untouched.
type Series struct {
	tags   []string
	points *Points
}

// ValueFunc reads a single value out of a series at a date. It is the shape of
// the injected "value at date" and "velocity" policies.
type ValueFunc func(s *Series, d civil.Date) int64

// New creates a series from tags and points. Points are copied.
func New(tags []string, points *Points) *Series {
	if points == nil {
		points = NewPoints()
	} else {
		points = points.Clone()
	}
	return newSeries(normalizeTags(tags), points)
}

func newSeries(tags []string, points *Points) *Series {
	return &Series{tags: tags, points: points}
}

// normalizeTags sorts and de-duplicates display labels.
func normalizeTags(tags []string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// Tags returns the sorted, de-duplicated display labels.
func (s *Series) Tags() []string {
	return slices.Clone(s.tags)
}

// Name joins the tags into a single display name.
func (s *Series) Name() string {
	return strings.Join(s.tags, ", ")
}

// Points returns a copy of the date map.
func (s *Series) Points() *Points {
	return s.points.Clone()
}

// Len returns the number of data points.
func (s *Series) Len() int {
	return s.points.Len()
}

// Dates returns the dates of the series in ascending order.
func (s *Series) Dates() []civil.Date {
	return s.points.Dates()
}

// Value returns the value at d, or 0 when d has no entry.
func (s *Series) Value(d civil.Date) int64 {
	v, _ := s.points.Get(d)
	return v
}

// ValueAtOrBefore returns the value of the latest entry at or before d, or 0
// when the series starts after d.
func (s *Series) ValueAtOrBefore(d civil.Date) int64 {
	_, v, _ := s.points.Floor(d)
	return v
}

// EarliestDate returns the first date of the series.
func (s *Series) EarliestDate() (civil.Date, error) {
	d, _, ok := s.points.First()
	if !ok {
		return civil.Date{}, ErrEmptySeries
	}
	return d, nil
}

// LatestDate returns the last date of the series.
func (s *Series) LatestDate() (civil.Date, error) {
	d, _, ok := s.points.Last()
	if !ok {
		return civil.Date{}, ErrEmptySeries
	}
	return d, nil
}

// Accumulative replaces every value by the running total up to and including
// its date. If final has no entry, one holding the grand total is added so
// the series always reaches final.
func (s *Series) Accumulative(final civil.Date) *Series {
	out := NewPoints()
	var total int64
	s.points.Each(func(d civil.Date, v int64) {
		total += v
		out.Set(d, total)
	})

	if !out.Has(final) {
		out.Set(final, total)
	}

	return newSeries(s.tags, out)
}

// Diff replaces every value by its difference to the preceding entry. The
// first entry has no predecessor and is dropped.
func (s *Series) Diff() *Series {
	out := NewPoints()
	var prev int64
	first := true
	s.points.Each(func(d civil.Date, v int64) {
		if !first {
			out.Set(d, v-prev)
		}
		first = false
		prev = v
	})
	return newSeries(s.tags, out)
}

// Prepend back-fills the series with value, stepping step days back from its
// earliest date for as long as the current date is after start. Existing
// entries are never overwritten. An empty series is returned as is.
func (s *Series) Prepend(value int64, start civil.Date, step int) (*Series, error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "prepend step %d", step)
	}

	out := s.points.Clone()
	current, _, ok := s.points.First()
	if !ok {
		return newSeries(s.tags, out), nil
	}

	for current.After(start) {
		current = current.AddDays(-step)
		if !out.Has(current) {
			out.Set(current, value)
		}
	}

	return newSeries(s.tags, out), nil
}

// Add merges two series: tags are united and values on shared dates summed.
func (s *Series) Add(other *Series) *Series {
	out := s.points.Clone()
	other.points.Each(out.Add)

	tags := make([]string, 0, len(s.tags)+len(other.tags))
	tags = append(tags, s.tags...)
	tags = append(tags, other.tags...)

	return newSeries(normalizeTags(tags), out)
}
