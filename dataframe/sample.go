package dataframe

import "github.com/go-tabpipe/tabpipe/core"

// Sample is a single row of a numeric frame: one value per column,
// in column order, with the label sitting at whatever position the
// caller's label_index names.
type Sample = []core.Numeric

// Row extracts row i of a float64 frame as a Sample. It returns
// core.OutOfBounds if i is outside [0, NumRows).
func Row(f *Frame[float64], i int) (Sample, error) {
	if i < 0 || i >= f.NumRows() {
		return nil, core.New(core.OutOfBounds, "row index out of range")
	}
	row := make(Sample, f.NumCols())
	for c := 0; c < f.NumCols(); c++ {
		col, err := f.ColumnAt(c)
		if err != nil {
			return nil, err
		}
		row[c] = col.Values[i]
	}
	return row, nil
}

// Rows extracts the rows at the given indices, in the order given, as
// a slice of Samples.
func Rows(f *Frame[float64], indices []int) ([]Sample, error) {
	samples := make([]Sample, len(indices))
	for i, idx := range indices {
		row, err := Row(f, idx)
		if err != nil {
			return nil, err
		}
		samples[i] = row
	}
	return samples, nil
}

// AllRows extracts every row of the frame as a slice of Samples.
func AllRows(f *Frame[float64]) ([]Sample, error) {
	indices := make([]int, f.NumRows())
	for i := range indices {
		indices[i] = i
	}
	return Rows(f, indices)
}
