package timeseries

import (
	"testing"

	"cloud.google.com/go/civil"
)

func day(t testing.TB, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func seriesOf(t testing.TB, tag string, values map[string]int64) *Series {
	t.Helper()
	p := NewPoints()
	for k, v := range values {
		p.Set(day(t, k), v)
	}
	return New([]string{tag}, p)
}
