package core

import "math"

// Numeric is the scalar type flowing through every stage of the pipeline
// once parsing has converted raw text into floating point values.
type Numeric = float64

// EPS is the tolerance below which two Numeric values are considered
// equal, used for mode-key quantization and for the classification-score
// evaluator's correct/incorrect threshold.
const EPS = 1e-8

// ModeKey quantizes v to an integer bucket at EPS resolution so that
// floating point values that differ only by rounding noise collapse to
// the same mode-vote key.
func ModeKey(v Numeric) int64 {
	return int64(math.Floor(v / EPS))
}
