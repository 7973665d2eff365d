package timeseries

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  civil.Date
		ok    bool
	}{
		{"iso", "2021-01-05", civil.Date{Year: 2021, Month: 1, Day: 5}, true},
		{"iso with spaces", " 2021-03-15 ", civil.Date{Year: 2021, Month: 3, Day: 15}, true},
		{"iso extra component", "2021-03-15-x", civil.Date{Year: 2021, Month: 3, Day: 15}, true},
		{"export notation", "2021M01D05", civil.Date{Year: 2021, Month: 1, Day: 5}, true},
		{"quoted export notation", `"2020M12D31"`, civil.Date{Year: 2020, Month: 12, Day: 31}, true},
		{"header", "date", civil.Date{}, false},
		{"month header", "Month", civil.Date{}, false},
		{"missing day", "2021-01", civil.Date{}, false},
		{"missing D", "2021M01", civil.Date{}, false},
		{"non numeric", "2021-xx-05", civil.Date{}, false},
		{"invalid calendar date", "2021-02-30", civil.Date{}, false},
		{"month out of range", "2021M13D01", civil.Date{}, false},
		{"empty", "", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
