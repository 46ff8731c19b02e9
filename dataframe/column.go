// Package dataframe provides the generic columnar table that flows through
// every stage of the pipeline: raw strings out of the reader, parsed
// optional floats out of the parser, and dense floats from scrub onward.
package dataframe

import (
	"github.com/go-tabpipe/tabpipe/core"
)

// Column is a named, typed sequence of values with an attached metadata
// dictionary. The metadata dictionary carries the value->label mapping
// nominal and ordinal parsers attach to a column so later stages (and
// diagnostics) can recover the original category names.
type Column[T any] struct {
	Name     string
	Values   []T
	Metadata map[string]string
}

// NewColumn builds a Column with an empty metadata dictionary.
func NewColumn[T any](name string, values []T) *Column[T] {
	return &Column[T]{Name: name, Values: values, Metadata: map[string]string{}}
}

// Len returns the number of rows in the column.
func (c *Column[T]) Len() int { return len(c.Values) }

// Clone returns a deep copy of the column: independent backing array and
// metadata map so callers can mutate the copy without aliasing the
// original.
func (c *Column[T]) Clone() *Column[T] {
	values := make([]T, len(c.Values))
	copy(values, c.Values)
	meta := make(map[string]string, len(c.Metadata))
	for k, v := range c.Metadata {
		meta[k] = v
	}
	return &Column[T]{Name: c.Name, Values: values, Metadata: meta}
}

// Frame is an ordered collection of same-length columns, addressable by
// name or by position, matching spec's DataFrame<T>.
type Frame[T any] struct {
	columns []*Column[T]
	index   map[string]int
}

// NewFrame builds a Frame from columns in the given order. It returns
// core.ShapeMismatch if the columns don't all have the same length, or
// core.InvalidConfig on a duplicate column name.
func NewFrame[T any](columns ...*Column[T]) (*Frame[T], error) {
	f := &Frame[T]{
		columns: make([]*Column[T], 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	rows := -1
	for _, c := range columns {
		if rows == -1 {
			rows = c.Len()
		} else if c.Len() != rows {
			return nil, core.New(core.ShapeMismatch, "column "+c.Name+" has a different row count than the frame")
		}
		if _, exists := f.index[c.Name]; exists {
			return nil, core.New(core.InvalidConfig, "duplicate column name "+c.Name)
		}
		f.index[c.Name] = len(f.columns)
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// NumCols returns the number of columns in the frame.
func (f *Frame[T]) NumCols() int { return len(f.columns) }

// NumRows returns the number of rows in the frame, or 0 for a columnless frame.
func (f *Frame[T]) NumRows() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Len()
}

// ColumnNames returns the frame's column names in positional order.
func (f *Frame[T]) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// ColumnAt returns the column at the given position, or
// core.OutOfBounds if i is outside [0, NumCols).
func (f *Frame[T]) ColumnAt(i int) (*Column[T], error) {
	if i < 0 || i >= len(f.columns) {
		return nil, core.New(core.OutOfBounds, "column index out of range")
	}
	return f.columns[i], nil
}

// Column returns the column with the given name, or core.NotFound if no
// such column exists.
func (f *Frame[T]) Column(name string) (*Column[T], error) {
	i, ok := f.index[name]
	if !ok {
		return nil, core.New(core.NotFound, "column "+name+" not found")
	}
	return f.columns[i], nil
}

// IndexOf returns the position of the named column, or core.NotFound.
func (f *Frame[T]) IndexOf(name string) (int, error) {
	i, ok := f.index[name]
	if !ok {
		return 0, core.New(core.NotFound, "column "+name+" not found")
	}
	return i, nil
}

// WithColumn returns a new Frame with col appended (or replacing the
// existing column of the same name), leaving the receiver untouched.
func (f *Frame[T]) WithColumn(col *Column[T]) (*Frame[T], error) {
	cols := make([]*Column[T], len(f.columns))
	copy(cols, f.columns)
	if i, exists := f.index[col.Name]; exists {
		cols[i] = col
		return NewFrame(cols...)
	}
	cols = append(cols, col)
	return NewFrame(cols...)
}

// DropRows returns a new Frame with the rows at the given indices removed.
// indices need not be sorted; duplicates are ignored.
func (f *Frame[T]) DropRows(indices []int) (*Frame[T], error) {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		drop[i] = struct{}{}
	}
	cols := make([]*Column[T], len(f.columns))
	for ci, c := range f.columns {
		values := make([]T, 0, c.Len())
		for ri, v := range c.Values {
			if _, skip := drop[ri]; skip {
				continue
			}
			values = append(values, v)
		}
		nc := &Column[T]{Name: c.Name, Values: values, Metadata: c.Metadata}
		cols[ci] = nc
	}
	return NewFrame(cols...)
}
