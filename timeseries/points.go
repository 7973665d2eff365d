package timeseries

import (
	"cloud.google.com/go/civil"
	"github.com/emirpasic/gods/maps/treemap"
)

// Points is an ordered mapping from calendar date to value. Iteration is
// always in ascending date order and missing dates are simply absent.
//
// Use NewPoints to create one; the zero value is not usable.
type Points struct {
	tree *treemap.Map
}

// NewPoints returns an empty date map.
func NewPoints() *Points {
	return &Points{tree: treemap.NewWith(compareDates)}
}

// PointsOf builds a date map from a plain map.
func PointsOf(m map[civil.Date]int64) *Points {
	p := NewPoints()
	for d, v := range m {
		p.Set(d, v)
	}
	return p
}

// Set stores v at d, replacing any previous value.
func (p *Points) Set(d civil.Date, v int64) {
	p.tree.Put(d, v)
}

// Add sums v into the value stored at d.
func (p *Points) Add(d civil.Date, v int64) {
	if cur, ok := p.Get(d); ok {
		v += cur
	}
	p.tree.Put(d, v)
}

// Get returns the value stored at d.
func (p *Points) Get(d civil.Date) (int64, bool) {
	v, ok := p.tree.Get(d)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// Has reports whether d has an entry.
func (p *Points) Has(d civil.Date) bool {
	_, ok := p.tree.Get(d)
	return ok
}

// Len returns the number of entries.
func (p *Points) Len() int {
	return p.tree.Size()
}

// First returns the earliest entry.
func (p *Points) First() (civil.Date, int64, bool) {
	return entry(p.tree.Min())
}

// Last returns the latest entry.
func (p *Points) Last() (civil.Date, int64, bool) {
	return entry(p.tree.Max())
}

// Floor returns the latest entry at or before d.
func (p *Points) Floor(d civil.Date) (civil.Date, int64, bool) {
	return entry(p.tree.Floor(d))
}

// Each calls fn for every entry in ascending date order.
func (p *Points) Each(fn func(d civil.Date, v int64)) {
	it := p.tree.Iterator()
	for it.Next() {
		fn(it.Key().(civil.Date), it.Value().(int64))
	}
}

// Dates returns the keys in ascending order.
func (p *Points) Dates() []civil.Date {
	dates := make([]civil.Date, 0, p.Len())
	p.Each(func(d civil.Date, _ int64) {
		dates = append(dates, d)
	})
	return dates
}

// Map returns the entries as a plain map.
func (p *Points) Map() map[civil.Date]int64 {
	m := make(map[civil.Date]int64, p.Len())
	p.Each(func(d civil.Date, v int64) {
		m[d] = v
	})
	return m
}

// Clone returns an independent copy.
func (p *Points) Clone() *Points {
	out := NewPoints()
	p.Each(out.Set)
	return out
}

func entry(k, v interface{}) (civil.Date, int64, bool) {
	if k == nil {
		return civil.Date{}, 0, false
	}
	return k.(civil.Date), v.(int64), true
}
