// Package parse converts the raw string columns the input reader produces
// into numeric columns, per spec's three parser kinds plus the null
// passthrough. Each parser is a pure function from Column[*string] to
// Column[*float64]; nil cells (missing values) pass through as nil.
package parse

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// Kind names the parser to apply to a column, per the configuration
// document's parsing block.
type Kind string

const (
	Numerical Kind = "numerical"
	Ordinal   Kind = "ordinal"
	Nominal   Kind = "nominal"
	Null      Kind = "null"
)

// Apply dispatches to the parser named by kind. It returns core.NotFound
// for an unrecognized kind.
func Apply(kind Kind, col *dataframe.Column[*string]) (*dataframe.Column[*float64], error) {
	switch kind {
	case Numerical:
		return Numerical_(col)
	case Ordinal:
		return Ordinal_(col)
	case Nominal:
		return Nominal_(col)
	case Null:
		return Null_(col)
	default:
		return nil, core.New(core.NotFound, fmt.Sprintf("unknown parser kind %q", kind))
	}
}

// Numerical_ parses every non-nil cell as a float64. A cell that fails to
// parse produces a core.Numeric error naming the offending value.
func Numerical_(col *dataframe.Column[*string]) (*dataframe.Column[*float64], error) {
	out := make([]*float64, len(col.Values))
	for i, cell := range col.Values {
		if cell == nil {
			continue
		}
		v, err := strconv.ParseFloat(*cell, 64)
		if err != nil {
			return nil, core.Wrap(core.Numeric, fmt.Sprintf("column %q row %d: %q is not numeric", col.Name, i, *cell), err)
		}
		out[i] = &v
	}
	return dataframe.NewColumn(col.Name, out), nil
}

// Ordinal_ assigns each distinct category a float code in the sorted
// lexical order of the category's string form, recording the
// code->category mapping in the output column's metadata so a value's
// original label can be recovered later.
func Ordinal_(col *dataframe.Column[*string]) (*dataframe.Column[*float64], error) {
	categories := distinctSorted(col.Values)
	codeOf := make(map[string]float64, len(categories))
	meta := make(map[string]string, len(categories))
	for i, cat := range categories {
		codeOf[cat] = float64(i)
		meta[strconv.Itoa(i)] = cat
	}

	out := make([]*float64, len(col.Values))
	for i, cell := range col.Values {
		if cell == nil {
			continue
		}
		code := codeOf[*cell]
		out[i] = &code
	}

	outCol := dataframe.NewColumn(col.Name, out)
	outCol.Metadata = meta
	return outCol, nil
}

// Nominal_ behaves like Ordinal_ but the assigned codes carry no ordering
// meaning; categories are still numbered for storage, with the same
// metadata dictionary attached, per spec's one-hot-free nominal encoding.
func Nominal_(col *dataframe.Column[*string]) (*dataframe.Column[*float64], error) {
	return Ordinal_(col)
}

// Null_ drops the column's values entirely, producing an all-missing
// float64 column. Used for columns the configuration marks as ignored.
func Null_(col *dataframe.Column[*string]) (*dataframe.Column[*float64], error) {
	out := make([]*float64, len(col.Values))
	outCol := dataframe.NewColumn(col.Name, out)
	return outCol, nil
}

func distinctSorted(values []*string) []string {
	seen := map[string]struct{}{}
	for _, v := range values {
		if v == nil {
			continue
		}
		seen[*v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
