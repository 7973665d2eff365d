package timeseries

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedValue marks a numeric field that could not be parsed. Row
	// decoding treats it as fatal: source data must be well formed.
	ErrMalformedValue = errors.New("malformed numeric value")

	// ErrEmptySeries indicates an operation needed at least one data point.
	ErrEmptySeries = errors.New("series has no data points")

	// ErrEmptyGroup indicates a group was built from no series at all.
	ErrEmptyGroup = errors.New("group has no series")

	// ErrInvalidStep indicates a non-positive step in days.
	ErrInvalidStep = errors.New("step must be a positive number of days")
)
