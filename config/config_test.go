package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
input:
  address: data.csv
  format: csv
  missing_values: ["", "NA"]
  headers: true
parsing: ["numerical", "numerical"]
scrub:
  - name: mean
    index: 0
transform:
  - name: zscore
    index: 0
    parameters: {}
training:
  model:
    name: knn-simple
    task: classification
    parameters:
      k: 3
  evaluation: classification-score
  partitioning:
    strategy: stratified-kfold
    parameters:
      num_folds: 5
  strategy: simple
  label_index: 1
  tunning:
    parameters:
      k: [1, 3, 5]
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesDocument(t *testing.T) {
	path := writeTemp(t, sampleDoc)
	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", doc.Input.Address)
	assert.Equal(t, "knn-simple", doc.Training.Model.Name)
	assert.Equal(t, 5.0, doc.Training.Partitioning.Parameters["num_folds"])
	assert.Equal(t, []float64{1, 3, 5}, doc.Training.Tunning.Parameters["k"])
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMissingAddress(t *testing.T) {
	path := writeTemp(t, "input:\n  format: csv\ntraining:\n  model:\n    name: knn-simple\n  strategy: simple\n  partitioning:\n    strategy: kfold\nparsing: [\"numerical\"]\n")
	_, err := Load(path)
	assert.Error(t, err)
}
