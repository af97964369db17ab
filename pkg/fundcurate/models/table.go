// Package models defines the tabular structures shared by the curation pipeline.
package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Row maps a column name to its cell value.
// A column missing from the map reads as an empty string.
type Row map[string]string

// Table is a named, ordered sequence of rows with a fixed column order.
type Table struct {
	// Name is the source sheet name or the output tab name.
	Name string `json:"name"`
	// Columns is the column order used when the table is written.
	Columns []string `json:"columns"`
	// Rows holds the table body (header excluded).
	Rows []Row `json:"rows"`
}

// NewTable creates an empty table with the given column order.
func NewTable(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
	}
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the column is declared on the table.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell at row i, or "" when the row or column is absent.
func (t *Table) Value(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][column]
}

// Column returns a copy of the values in one column, in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// SetColumn declares a column (appending it to the order if new) and assigns
// value to every row.
func (t *Table) SetColumn(name, value string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		row[name] = value
	}
}

// Append adds rows at the end of the table and returns the index at which
// the block starts.
func (t *Table) Append(rows ...Row) int {
	start := len(t.Rows)
	t.Rows = append(t.Rows, rows...)
	return start
}

// Reorder sets the column order. Cells under columns not listed are removed
// and listed columns missing from a row are filled with "".
func (t *Table) Reorder(columns ...string) {
	keep := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		keep[c] = struct{}{}
	}
	for _, row := range t.Rows {
		for k := range row {
			if _, ok := keep[k]; !ok {
				delete(row, k)
			}
		}
		for _, c := range columns {
			if _, ok := row[c]; !ok {
				row[c] = ""
			}
		}
	}
	t.Columns = append([]string(nil), columns...)
}

// Filter keeps the rows for which keep returns true and returns the
// pre-filter indices of the rows it removed.
func (t *Table) Filter(keep func(Row) bool) []int {
	var dropped []int
	kept := t.Rows[:0]
	for i, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
			continue
		}
		dropped = append(dropped, i)
	}
	// clear the tail so dropped rows are not retained by the backing array
	for i := len(kept); i < len(t.Rows); i++ {
		t.Rows[i] = nil
	}
	t.Rows = kept
	return dropped
}

// Clone returns a deep copy of the table; rows of the copy share no maps
// with the original.
func (t *Table) Clone() (*Table, error) {
	var out Table
	if err := deepcopy.Copy(&out, *t); err != nil {
		return nil, err
	}
	return &out, nil
}
