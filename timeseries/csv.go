package timeseries

import (
	"bufio"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goalcast/internal/logger"
)

// maxLineSize bounds a single input row.
const maxLineSize = 1 << 20

// Parse builds a series from raw text, one observation per line.
//
// Fields are separated by ';' when the line contains one and by ',' otherwise.
// The first field is read as a date; when it is not one the second field is
// tried, so a leading label column is tolerated. Lines without a date are
// skipped. The remaining fields go to decode, and rows sharing a date are
// summed.
func Parse(tags []string, data string, decode RowDecoder) (*Series, error) {
	return ParseReader(tags, strings.NewReader(data), decode)
}

// ParseReader is Parse over an io.Reader.
func ParseReader(tags []string, r io.Reader, decode RowDecoder) (*Series, error) {
	log := logger.ComponentLogger("timeseries")
	points := NewPoints()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		d, fields, ok := splitRow(scanner.Text())
		if !ok {
			skipped++
			log.Debugw("Skipping row without a date", logger.FieldLine, lineNo)
			continue
		}

		v, err := decode(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points.Add(d, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rows")
	}

	s := newSeries(normalizeTags(tags), points)
	log.Debugw("Parsed series",
		logger.FieldSeries, s.Name(),
		logger.FieldCount, points.Len(),
		"skipped", skipped)
	return s, nil
}

// splitRow finds the row's date and returns the fields after it.
func splitRow(line string) (civil.Date, []string, bool) {
	sep := ","
	if strings.Contains(line, ";") {
		sep = ";"
	}
	fields := strings.Split(line, sep)

	if d, ok := ParseDate(fields[0]); ok {
		return d, fields[1:], true
	}
	if len(fields) > 1 {
		if d, ok := ParseDate(fields[1]); ok {
			return d, fields[2:], true
		}
	}
	return civil.Date{}, nil, false
}
