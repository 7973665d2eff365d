// Package timeseries provides date-keyed integer series and groups of them.
//
// A Series maps calendar dates to int64 observations in ascending order. It is
// built once from raw rows and never changes afterwards; transforms return new
// series.
//
// # Parsing rows
//
// Parse reads one observation per line. The date may be written as
// 2021-01-05 or in the 2021M01D05 export notation, and the remaining fields
// are turned into a value by a RowDecoder:
//
//	data := "2021-01-05;417\n2021-01-06;380\n"
//	s, err := timeseries.Parse([]string{"Admitted"}, data, timeseries.LastField)
//
// Rows sharing a date are summed, so per-region breakdowns collapse into one
// daily total. Rows without a date are skipped; a malformed number is an
// error wrapping ErrMalformedValue.
//
// # Transformations
//
//	total := s.Accumulative(final)          // running total, always reaching final
//	daily := total.Diff()                   // back to per-day values, first point dropped
//	padded, _ := s.Prepend(0, start, 1)     // back-fill zeros down to start
//	both := s.Add(other)                    // union of tags, values summed
//
// # Groups
//
// A Group aligns several series and remembers the date its data is "as of":
//
//	g, err := timeseries.NewGroup(firstDose, secondDose)
//	g, err = g.Accumulative()
//	final, sum, err := g.LastSum((*timeseries.Series).Value)
//
// Dates returns the union of all member dates, the x-axis for rendering.
// Forecast series are attached with With; see package goal.
package timeseries
