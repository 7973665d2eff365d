package timeseries

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// RowDecoder maps the fields following a row's date to a single value.
// A decoder must fail with ErrMalformedValue rather than guess.
type RowDecoder func(fields []string) (int64, error)

// ParseValue parses one numeric field. Surrounding whitespace and double
// quotes are ignored, so right-aligned exports like "2021-01-05;   417" work.
func ParseValue(field string) (int64, error) {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(field), `"`))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "field %q", field), ErrMalformedValue)
	}
	return v, nil
}

// LastField decodes the last field of the row.
func LastField(fields []string) (int64, error) {
	if len(fields) == 0 {
		return 0, errors.Wrap(ErrMalformedValue, "row has no value fields")
	}
	return ParseValue(fields[len(fields)-1])
}

// SumFields decodes every field and returns their sum.
func SumFields(fields []string) (int64, error) {
	var sum int64
	for _, f := range fields {
		v, err := ParseValue(f)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// NthField decodes the n-th field (0-based) following the date.
func NthField(n int) RowDecoder {
	return func(fields []string) (int64, error) {
		if n < 0 || n >= len(fields) {
			return 0, errors.Wrapf(ErrMalformedValue, "row has %d value fields, want field %d", len(fields), n)
		}
		return ParseValue(fields[n])
	}
}

// ParseDecoder resolves a decoder by name: "last", "sum" or "nth:<n>".
func ParseDecoder(name string) (RowDecoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "last":
		return LastField, nil
	case name == "sum":
		return SumFields, nil
	case strings.HasPrefix(name, "nth:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "nth:"))
		if err != nil || n < 0 {
			return nil, errors.WithHint(
				errors.Newf("invalid decoder %q", name),
				"nth takes a non-negative column index, e.g. nth:1")
		}
		return NthField(n), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown decoder %q", name),
			"use one of: last, sum, nth:<n>")
	}
}
