// Package table converts a set of values into each other's bases and prints
// the results side by side.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"basecalc/core/conversion"
	"basecalc/core/digit"
	"basecalc/core/ui"
)

// DefaultMaxSteps keeps fractional cells short
const DefaultMaxSteps = 4

// Entry is a value and the base it is written in
type Entry struct {
	Value string `json:"value"`
	Base  int    `json:"base"`
}

// Label returns "<value>_<base>"
func (e Entry) Label() string {
	return e.Value + "_" + strconv.Itoa(e.Base)
}

// Row holds the conversions of one entry into every column base
type Row struct {
	Entry Entry
	Cells []string
}

// Report is an ordered set of entries. The bases of the entries, in order,
// are the columns of the report.
type Report struct {
	entries []Entry
}

// New creates an empty report
func New() *Report {
	return &Report{}
}

// Add appends an entry after checking its base and digits
func (r *Report) Add(value string, base int) error {
	req := conversion.Request{Input: value, InputBase: base, OutputBase: base}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("adding %s: %w", Entry{Value: value, Base: base}.Label(), err)
	}
	r.entries = append(r.entries, Entry{Value: value, Base: base})
	return nil
}

// Entries returns the entries in insertion order
func (r *Report) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Bases returns the column bases
func (r *Report) Bases() []int {
	bases := make([]int, len(r.entries))
	for i, e := range r.entries {
		bases[i] = e.Base
	}
	return bases
}

// Results converts every entry into every column base
func (r *Report) Results(maxSteps int) ([]Row, error) {
	bases := r.Bases()
	rows := make([]Row, 0, len(r.entries))
	for _, e := range r.entries {
		row := Row{Entry: e, Cells: make([]string, len(bases))}
		for i, base := range bases {
			trace, err := conversion.ChangeBase(e.Value, e.Base, base, maxSteps)
			if err != nil {
				return nil, fmt.Errorf("converting %s to base %d: %w", e.Label(), base, err)
			}
			row.Cells[i] = trace.Result()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Render prints the report as a table with one column per base
func (r *Report) Render(w *ui.Writer, maxSteps int) error {
	rows, err := r.Results(maxSteps)
	if err != nil {
		return err
	}

	headers := []string{"value"}
	for _, base := range r.Bases() {
		headers = append(headers, strconv.Itoa(base))
	}
	t := w.NewTable(headers...)
	for _, row := range rows {
		t.AddRow(append([]string{row.Entry.Label()}, row.Cells...)...)
	}
	t.Render()
	return nil
}

// ParseEntry parses "value:base", e.g. "4D2,8:16"
func ParseEntry(s string) (Entry, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Entry{}, fmt.Errorf("entry %q: expected value:base", s)
	}
	base, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: base: %w", s, err)
	}
	if err := digit.ValidBase(base); err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", s, err)
	}
	return Entry{Value: s[:i], Base: base}, nil
}
