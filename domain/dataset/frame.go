package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Row holds one record's raw cell values keyed by column name.
type Row map[string]string

// Frame is the in-memory table the plot is built from: ordered column
// headers plus raw string rows. Cells stay untyped until a column is
// pulled out numerically, mirroring how the source files arrive.
type Frame struct {
	Columns []string
	Rows    []Row
}

// NewFrame creates a frame from headers and raw rows.
func NewFrame(columns []string, rows []Row) *Frame {
	return &Frame{Columns: columns, Rows: rows}
}

// HasColumn reports whether name is one of the frame's columns.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the names in cols absent from the frame.
func (f *Frame) MissingColumns(cols []string) []string {
	var missing []string
	for _, c := range cols {
		if !f.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Group is one combination of categorical values and the row indices
// carrying it.
type Group struct {
	// Values holds one value per grouping column, in grouping-column order.
	Values []string
	// Indices are the frame row indices belonging to this group, in
	// original row order.
	Indices []int
}

// Label joins the group's values with "&", the display form for
// multi-column groupings.
func (g Group) Label() string {
	return strings.Join(g.Values, "&")
}

// GroupBy partitions the frame's rows by the combination of values in
// cols. Groups come back sorted by their joined key so iteration order is
// deterministic across runs.
func (f *Frame) GroupBy(cols []string) ([]Group, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("grouping requires at least one column")
	}
	if missing := f.MissingColumns(cols); len(missing) > 0 {
		return nil, fmt.Errorf("grouping columns not in frame: %s", strings.Join(missing, ", "))
	}

	byKey := make(map[string]*Group)
	var keys []string
	for i, row := range f.Rows {
		values := make([]string, len(cols))
		for j, c := range cols {
			values[j] = row[c]
		}
		key := strings.Join(values, "\x00")
		g, ok := byKey[key]
		if !ok {
			g = &Group{Values: values}
			byKey[key] = g
			keys = append(keys, key)
		}
		g.Indices = append(g.Indices, i)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, *byKey[k])
	}
	return groups, nil
}

// NumericValues extracts column col for the given row indices as floats.
// Blank cells are skipped; any other unparsable cell is an error.
func (f *Frame) NumericValues(col string, indices []int) ([]float64, error) {
	if !f.HasColumn(col) {
		return nil, fmt.Errorf("column %q not in frame", col)
	}

	values := make([]float64, 0, len(indices))
	for _, i := range indices {
		cell := strings.TrimSpace(f.Rows[i][col])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: non-numeric value %q", col, i, cell)
		}
		values = append(values, v)
	}
	return values, nil
}
