// Package transform rescales or discretizes a single dense numeric column
// after scrubbing, mirroring GopherData's features/scalers package but
// trimmed to the four transforms spec's configuration document exposes.
package transform

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// Kind names a transform strategy.
type Kind string

const (
	ZScore         Kind = "zscore"
	EqualWidth     Kind = "equal-width"
	EqualFrequency Kind = "equal-frequency"
	Log10          Kind = "log10"
)

// Apply dispatches to the transform named by kind with the given
// parameters (e.g. {"bins": 5} for the two discretizers). It returns
// core.NotFound for an unrecognized kind and core.InvalidConfig for a
// missing or malformed parameter.
func Apply(kind Kind, col *dataframe.Column[float64], params map[string]float64) (*dataframe.Column[float64], error) {
	switch kind {
	case ZScore:
		return zscore(col)
	case EqualWidth:
		return equalWidth(col, params)
	case EqualFrequency:
		return equalFrequency(col, params)
	case Log10:
		return log10(col)
	default:
		return nil, core.New(core.NotFound, fmt.Sprintf("unknown transform kind %q", kind))
	}
}

func zscore(col *dataframe.Column[float64]) (*dataframe.Column[float64], error) {
	if col.Len() == 0 {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("column %q is empty", col.Name))
	}
	mean, std := stat.MeanStdDev(col.Values, nil)
	if std == 0 {
		return nil, core.New(core.Numeric, fmt.Sprintf("column %q has zero standard deviation", col.Name))
	}
	out := make([]float64, col.Len())
	for i, v := range col.Values {
		out[i] = (v - mean) / std
	}
	return dataframe.NewColumn(col.Name, out), nil
}

func bins(params map[string]float64) (int, error) {
	b, ok := params["bins"]
	if !ok || b < 2 {
		return 0, core.New(core.InvalidConfig, "equal-width/equal-frequency transform requires bins >= 2")
	}
	return int(b), nil
}

func equalWidth(col *dataframe.Column[float64], params map[string]float64) (*dataframe.Column[float64], error) {
	k, err := bins(params)
	if err != nil {
		return nil, err
	}
	if col.Len() == 0 {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("column %q is empty", col.Name))
	}
	lo, hi := col.Values[0], col.Values[0]
	for _, v := range col.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(k)
	out := make([]float64, col.Len())
	for i, v := range col.Values {
		if width == 0 {
			out[i] = 0
			continue
		}
		bin := int((v - lo) / width)
		if bin >= k {
			bin = k - 1
		}
		out[i] = float64(bin)
	}
	return dataframe.NewColumn(col.Name, out), nil
}

func equalFrequency(col *dataframe.Column[float64], params map[string]float64) (*dataframe.Column[float64], error) {
	k, err := bins(params)
	if err != nil {
		return nil, err
	}
	n := col.Len()
	if n == 0 {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("column %q is empty", col.Name))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return col.Values[order[a]] < col.Values[order[b]] })

	rankBin := make([]int, n)
	for rank, idx := range order {
		bin := rank * k / n
		if bin >= k {
			bin = k - 1
		}
		rankBin[idx] = bin
	}

	out := make([]float64, n)
	for i, bin := range rankBin {
		out[i] = float64(bin)
	}
	return dataframe.NewColumn(col.Name, out), nil
}

func log10(col *dataframe.Column[float64]) (*dataframe.Column[float64], error) {
	out := make([]float64, col.Len())
	for i, v := range col.Values {
		if v <= 0 {
			return nil, core.New(core.Numeric, fmt.Sprintf("column %q row %d: log10 of non-positive value %v", col.Name, i, v))
		}
		out[i] = math.Log10(v)
	}
	return dataframe.NewColumn(col.Name, out), nil
}
