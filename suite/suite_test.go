package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSuiteFile writes YAML content to a temp file and returns its path
func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultSuite(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	require.Len(t, s.Workloads, 5)

	kinds := make([]string, len(s.Workloads))
	for i, w := range s.Workloads {
		kinds[i] = w.Kind
	}
	assert.Equal(t, []string{KindAddBaseline, KindVectorSum, KindFibonacci, KindPrimes, KindTextAnalysis}, kinds)

	// Canonical demo sizes
	assert.Equal(t, 1_000_000, s.Workloads[1].Size)
	assert.Equal(t, 10, s.Workloads[1].Iterations)
	assert.Equal(t, 35, s.Workloads[2].N)
	assert.Equal(t, 100_000, s.Workloads[3].Limit)
	assert.Equal(t, 100, s.Workloads[4].Iterations)
	assert.Equal(t, 1000, s.Workloads[4].Repeat)
}

func TestLoadSuite(t *testing.T) {
	path := writeSuiteFile(t, `
workloads:
  - kind: fibonacci
    n: 20
    iterations: 3
  - name: tiny primes
    kind: primes
    limit: 100
`)

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Workloads, 2)

	assert.Equal(t, KindFibonacci, s.Workloads[0].Kind)
	assert.Equal(t, 20, s.Workloads[0].N)
	assert.Equal(t, 3, s.Workloads[0].Iterations)
	assert.Equal(t, "fibonacci", s.Workloads[0].Name, "label defaults to the kind")

	assert.Equal(t, "tiny primes", s.Workloads[1].Label())
	assert.Equal(t, 1, s.Workloads[1].Iterations, "iterations defaults to 1")
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadSuiteInvalidYAML(t *testing.T) {
	path := writeSuiteFile(t, "workloads: [kind: {")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadSuiteUnknownKind(t *testing.T) {
	path := writeSuiteFile(t, `
workloads:
  - kind: quicksort
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown workload kind")
}

func TestLoadSuiteNegativeParameters(t *testing.T) {
	path := writeSuiteFile(t, `
workloads:
  - kind: primes
    limit: -10
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit must be non-negative")
}

func TestValidateEmptySuite(t *testing.T) {
	err := Suite{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workloads")
}

func TestValidateNegativeIterations(t *testing.T) {
	s := Suite{Workloads: []Workload{{Kind: KindFibonacci, N: 5, Iterations: -2}}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be positive")
}
