// Package tuning builds the Cartesian product of a hyperparameter grid for
// the director's tuning loop.
package tuning

import (
	"fmt"
	"sort"

	"github.com/go-tabpipe/tabpipe/core"
)

// Candidate is one point in the grid: a fully resolved hyperparameter map.
type Candidate map[string]core.Numeric

// Grid expands values (a map from hyperparameter name to its candidate
// value list) into every combination. Keys are expanded in the order
// keyOrder gives (lexically sorted when keyOrder is nil), with the last
// key varying fastest, and each key's values in their own list order;
// keys of values missing from a non-nil keyOrder are not expanded. An
// empty mapping
// yields a single empty combination (the product over zero dimensions
// is 1). It returns core.NoCandidates only when a named dimension's
// value list is itself empty.
func Grid(values map[string][]core.Numeric, keyOrder []string) ([]Candidate, error) {
	if len(values) == 0 {
		return []Candidate{{}}, nil
	}
	if keyOrder == nil {
		keyOrder = sortedKeys(values)
	}
	for _, k := range keyOrder {
		if len(values[k]) == 0 {
			return nil, core.New(core.NoCandidates, fmt.Sprintf("hyperparameter %q has no candidate values", k))
		}
	}

	combos := []Candidate{{}}
	for _, key := range keyOrder {
		next := make([]Candidate, 0, len(combos)*len(values[key]))
		for _, base := range combos {
			for _, v := range values[key] {
				c := make(Candidate, len(base)+1)
				for k, bv := range base {
					c[k] = bv
				}
				c[key] = v
				next = append(next, c)
			}
		}
		combos = next
	}
	return combos, nil
}

func sortedKeys(values map[string][]core.Numeric) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
