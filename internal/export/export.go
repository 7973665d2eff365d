// Package export flattens projected groups onto their x-axis and writes them
// out for a chart renderer or a terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goalcast/timeseries"
)

// Table is one group laid out on the union of its dates.
type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Title   string   `json:"title" yaml:"title"`
	Updated string   `json:"updated" yaml:"updated"`
	Dates   []string `json:"dates" yaml:"dates"`
	Columns []Column `json:"series" yaml:"series"`
}

// Column holds one series with a value for every date of the table. Dates
// the series has no entry for read as 0.
type Column struct {
	Name   string   `json:"name" yaml:"name"`
	Tags   []string `json:"tags" yaml:"tags"`
	Values []int64  `json:"values" yaml:"values"`
}

// FromGroup flattens g.
func FromGroup(name, title string, g *timeseries.Group) Table {
	dates := g.Dates()

	t := Table{
		Name:    name,
		Title:   title,
		Updated: g.Updated().String(),
		Dates:   make([]string, len(dates)),
	}
	for i, d := range dates {
		t.Dates[i] = d.String()
	}

	for _, s := range g.Series() {
		col := Column{
			Name:   s.Name(),
			Tags:   s.Tags(),
			Values: make([]int64, len(dates)),
		}
		for i, d := range dates {
			col.Values[i] = s.Value(d)
		}
		t.Columns = append(t.Columns, col)
	}
	return t
}

// Write encodes tables in format: json, yaml, csv or table.
func Write(w io.Writer, format string, tables []Table) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return writeCSV(w, tables)
	case "table":
		return writeTerminal(w, tables)
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

// rows returns the header and one row per date.
func (t Table) rows() [][]string {
	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "date")
	for _, c := range t.Columns {
		header = append(header, c.Name)
	}

	out := [][]string{header}
	for i, d := range t.Dates {
		row := make([]string, 0, len(header))
		row = append(row, d)
		for _, c := range t.Columns {
			row = append(row, strconv.FormatInt(c.Values[i], 10))
		}
		out = append(out, row)
	}
	return out
}

func writeCSV(w io.Writer, tables []Table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"# " + t.Name, t.Updated}); err != nil {
			return err
		}
		if err := cw.WriteAll(t.rows()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTerminal(w io.Writer, tables []Table) error {
	for _, t := range tables {
		title := t.Title
		if title == "" {
			title = t.Name
		}
		if _, err := fmt.Fprintf(w, "%s (as of %s)\n", title, t.Updated); err != nil {
			return err
		}

		out, err := pterm.DefaultTable.WithHasHeader().WithData(t.rows()).Srender()
		if err != nil {
			return errors.Wrapf(err, "render %s", t.Name)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
