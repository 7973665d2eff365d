package timeseries

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsOrderAndAdd(t *testing.T) {
	p := NewPoints()
	p.Set(day(t, "2021-01-07"), 3)
	p.Set(day(t, "2021-01-05"), 1)
	p.Add(day(t, "2021-01-06"), 2)
	p.Add(day(t, "2021-01-06"), 5)

	want := []civil.Date{day(t, "2021-01-05"), day(t, "2021-01-06"), day(t, "2021-01-07")}
	if diff := cmp.Diff(want, p.Dates()); diff != "" {
		t.Errorf("Dates() mismatch (-want +got):\n%s", diff)
	}

	v, ok := p.Get(day(t, "2021-01-06"))
	require.True(t, ok)
	assert.Equal(t, int64(7), v)

	first, fv, ok := p.First()
	require.True(t, ok)
	assert.Equal(t, day(t, "2021-01-05"), first)
	assert.Equal(t, int64(1), fv)

	last, lv, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, day(t, "2021-01-07"), last)
	assert.Equal(t, int64(3), lv)
}

func TestPointsFloor(t *testing.T) {
	p := PointsOf(map[civil.Date]int64{
		day(t, "2021-01-05"): 10,
		day(t, "2021-01-09"): 20,
	})

	d, v, ok := p.Floor(day(t, "2021-01-08"))
	require.True(t, ok)
	assert.Equal(t, day(t, "2021-01-05"), d)
	assert.Equal(t, int64(10), v)

	_, _, ok = p.Floor(day(t, "2021-01-01"))
	assert.False(t, ok)
}

func TestPointsEmpty(t *testing.T) {
	p := NewPoints()
	_, _, ok := p.First()
	assert.False(t, ok)
	_, _, ok = p.Last()
	assert.False(t, ok)
	assert.Empty(t, p.Dates())
}

func TestPointsCloneIsIndependent(t *testing.T) {
	p := PointsOf(map[civil.Date]int64{day(t, "2021-01-05"): 1})
	c := p.Clone()
	c.Set(day(t, "2021-01-05"), 99)
	c.Set(day(t, "2021-01-06"), 1)

	v, _ := p.Get(day(t, "2021-01-05"))
	assert.Equal(t, int64(1), v)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, c.Len())
}
