package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tabpipe/tabpipe/core"
)

func TestGridCartesianProduct(t *testing.T) {
	values := map[string][]core.Numeric{
		"k":     {1, 3},
		"gamma": {0.1, 0.5},
	}
	combos, err := Grid(values, []string{"k", "gamma"})
	require.NoError(t, err)
	require.Len(t, combos, 4)
	assert.Equal(t, core.Numeric(1), combos[0]["k"])
	assert.Equal(t, core.Numeric(0.1), combos[0]["gamma"])
	assert.Equal(t, core.Numeric(1), combos[1]["k"])
	assert.Equal(t, core.Numeric(0.5), combos[1]["gamma"])
	assert.Equal(t, core.Numeric(3), combos[2]["k"])
}

func TestGridRejectsEmptyDimension(t *testing.T) {
	values := map[string][]core.Numeric{"k": {}}
	_, err := Grid(values, []string{"k"})
	assert.Error(t, err)
}

func TestGridEmptyMappingYieldsSingleEmptyCombination(t *testing.T) {
	combos, err := Grid(map[string][]core.Numeric{}, nil)
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Empty(t, combos[0])
}
