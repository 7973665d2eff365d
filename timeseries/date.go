package timeseries

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ParseDate converts a date token into a calendar date.
//
// Two notations are accepted: plain "2021-01-05" and the "2021M01D05" form
// found in some statistics exports, optionally wrapped in double quotes.
// The boolean is false when the token is not a date; callers skip the row.
func ParseDate(token string) (civil.Date, bool) {
	s := strings.TrimSpace(token)

	if strings.Contains(s, "M") {
		s = strings.Trim(s, `"`)
		ym := strings.Split(s, "M")
		if len(ym) < 2 {
			return civil.Date{}, false
		}
		md := strings.Split(ym[1], "D")
		if len(md) < 2 {
			return civil.Date{}, false
		}
		return makeDate(ym[0], md[0], md[1])
	}

	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return civil.Date{}, false
	}
	return makeDate(parts[0], parts[1], parts[2])
}

func makeDate(year, month, day string) (civil.Date, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return civil.Date{}, false
	}
	m, err := strconv.ParseUint(month, 10, 8)
	if err != nil {
		return civil.Date{}, false
	}
	d, err := strconv.ParseUint(day, 10, 8)
	if err != nil {
		return civil.Date{}, false
	}

	date := civil.Date{Year: y, Month: time.Month(m), Day: int(d)}
	if !date.IsValid() {
		return civil.Date{}, false
	}
	return date, true
}

// compareDates orders civil.Date keys for the tree containers.
func compareDates(a, b interface{}) int {
	da := a.(civil.Date)
	db := b.(civil.Date)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	default:
		return 0
	}
}
