// Package frame provides the column-ordered table abstraction shared by the
// merge pipeline: a fixed list of named columns over column-major typed cells.
// A Frame is built once at load time and treated as immutable afterwards.
package frame

import "fmt"

// Column is a named, column-major slice of cells.
type Column struct {
	Name   string
	Values []Value
}

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	cols  []Column
	index map[string]int
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{index: make(map[string]int)}
}

// AddColumn appends a column. The first column fixes the row count; every
// later column must match it. Duplicate names are rejected.
func (f *Frame) AddColumn(name string, values []Value) error {
	if _, ok := f.index[name]; ok {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(f.cols) > 0 && len(values) != f.NumRows() {
		return fmt.Errorf("column %q has %d rows, frame has %d", name, len(values), f.NumRows())
	}
	f.index[name] = len(f.cols)
	f.cols = append(f.cols, Column{Name: name, Values: values})
	return nil
}

// NumRows returns the row count.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0].Values)
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.cols[i], true
}

// ColumnAt returns the column at position i.
func (f *Frame) ColumnAt(i int) Column { return f.cols[i] }

// Cell returns the value at (row, col).
func (f *Frame) Cell(row, col int) Value { return f.cols[col].Values[row] }

// Row returns the values of row i in column order.
func (f *Frame) Row(i int) []Value {
	out := make([]Value, len(f.cols))
	for j, c := range f.cols {
		out[j] = c.Values[i]
	}
	return out
}

// Rename replaces column names per the mapping. Names absent from the
// mapping are kept. Column order never changes.
func (f *Frame) Rename(mapping map[string]string) {
	for i := range f.cols {
		if to, ok := mapping[f.cols[i].Name]; ok {
			delete(f.index, f.cols[i].Name)
			f.cols[i].Name = to
			f.index[to] = i
		}
	}
}

// NullCount returns the number of null cells in the whole frame.
func (f *Frame) NullCount() int {
	n := 0
	for _, c := range f.cols {
		for _, v := range c.Values {
			if v.IsNull() {
				n++
			}
		}
	}
	return n
}

// Ints extracts a column as int64s. Fails on a missing column or any
// cell that is not an int.
func (f *Frame) Ints(name string) ([]int64, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]int64, len(c.Values))
	for i, v := range c.Values {
		n, ok := v.Int()
		if !ok {
			return nil, fmt.Errorf("column %q row %d: want int, got %s", name, i, v.Kind())
		}
		out[i] = n
	}
	return out, nil
}

// Floats extracts a column as float64s, promoting int cells. Fails on a
// missing column or any null/string cell.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		x, ok := v.Float64()
		if !ok {
			return nil, fmt.Errorf("column %q row %d: want numeric, got %s", name, i, v.Kind())
		}
		out[i] = x
	}
	return out, nil
}

// Strings extracts a column as strings. Fails on a missing column or any
// cell that is not a string.
func (f *Frame) Strings(name string) ([]string, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]string, len(c.Values))
	for i, v := range c.Values {
		s, ok := v.Str()
		if !ok {
			return nil, fmt.Errorf("column %q row %d: want string, got %s", name, i, v.Kind())
		}
		out[i] = s
	}
	return out, nil
}
