// Package scrub fills or drops missing values after parsing, producing a
// dense Frame[float64] for the transform stage. Mean and mode scrubbers
// fill a single column's missing cells into a new column; Amputate drops any row that still
// has a missing value in any column, after all configured scrubbers run.
package scrub

import (
	"fmt"
	"sort"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// Kind names a scrubbing strategy for a single column.
type Kind string

const (
	Mean Kind = "mean"
	Mode Kind = "mode"
)

// Apply fills the named column's missing cells using the given strategy,
// returning a new column (the frame itself is not mutated). It returns
// core.EmptyInput if every value in the column is missing, and
// core.NotFound for an unrecognized kind.
func Apply(kind Kind, col *dataframe.Column[*float64]) (*dataframe.Column[*float64], error) {
	switch kind {
	case Mean:
		return fillWith(col, mean)
	case Mode:
		return fillWith(col, mode)
	default:
		return nil, core.New(core.NotFound, fmt.Sprintf("unknown scrub kind %q", kind))
	}
}

func fillWith(col *dataframe.Column[*float64], stat func([]float64) (float64, error)) (*dataframe.Column[*float64], error) {
	present := make([]float64, 0, col.Len())
	for _, v := range col.Values {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) == 0 {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("column %q has no non-missing values to scrub from", col.Name))
	}
	fill, err := stat(present)
	if err != nil {
		return nil, err
	}

	out := make([]*float64, col.Len())
	for i, v := range col.Values {
		if v != nil {
			out[i] = v
			continue
		}
		f := fill
		out[i] = &f
	}
	return dataframe.NewColumn(col.Name, out), nil
}

func mean(values []float64) (float64, error) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

func mode(values []float64) (float64, error) {
	counts := make(map[int64]int, len(values))
	order := make(map[int64]float64, len(values))
	for _, v := range values {
		key := core.ModeKey(v)
		counts[key]++
		if _, seen := order[key]; !seen {
			order[key] = v
		}
	}
	keys := make([]int64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return order[best], nil
}

// Amputate removes every row of f that still has a missing value in at
// least one column. A row is dropped if ANY column is missing for that
// row, not just the columns the caller is directly scrubbing.
func Amputate(f *dataframe.Frame[*float64]) (*dataframe.Frame[float64], error) {
	drop := map[int]struct{}{}
	for c := 0; c < f.NumCols(); c++ {
		col, err := f.ColumnAt(c)
		if err != nil {
			return nil, err
		}
		for i, v := range col.Values {
			if v == nil {
				drop[i] = struct{}{}
			}
		}
	}

	columns := make([]*dataframe.Column[float64], f.NumCols())
	for c := 0; c < f.NumCols(); c++ {
		col, err := f.ColumnAt(c)
		if err != nil {
			return nil, err
		}
		values := make([]float64, 0, col.Len())
		for i, v := range col.Values {
			if _, skip := drop[i]; skip {
				continue
			}
			values = append(values, *v)
		}
		nc := dataframe.NewColumn(col.Name, values)
		nc.Metadata = col.Metadata
		columns[c] = nc
	}

	out, err := dataframe.NewFrame(columns...)
	if err != nil {
		return nil, err
	}
	if out.NumRows() == 0 {
		return nil, core.New(core.EmptyInput, "amputation removed every row")
	}
	return out, nil
}
