// Package suite defines benchmark workloads: which algorithms to run and
// with what input sizes. A suite can be loaded from a YAML file or taken
// from the built-in defaults that mirror the canonical demo run.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workload kinds. Each kind maps to one reference algorithm (and, where one
// exists, its tuned or baseline counterpart).
const (
	KindVectorSum    = "vector-sum"
	KindFibonacci    = "fibonacci"
	KindPrimes       = "primes"
	KindTextAnalysis = "text-analysis"
	KindAddBaseline  = "add-baseline"
)

// Workload describes a single timed run.
type Workload struct {
	Name       string `yaml:"name,omitempty"`       // display label; defaults to the kind
	Kind       string `yaml:"kind"`                 // one of the Kind* constants
	Iterations int    `yaml:"iterations,omitempty"` // timed invocations; defaults to 1
	Size       int    `yaml:"size,omitempty"`       // vector-sum: element count
	N          int    `yaml:"n,omitempty"`          // fibonacci: index
	Limit      int    `yaml:"limit,omitempty"`      // primes: upper bound
	Repeat     int    `yaml:"repeat,omitempty"`     // text-analysis: sample text multiplier
}

// Suite is an ordered list of workloads.
type Suite struct {
	Workloads []Workload `yaml:"workloads"`
}

// Default returns the canonical suite: the same sequence and sizes the
// original demo runs.
func Default() Suite {
	return Suite{Workloads: []Workload{
		{Kind: KindAddBaseline, Iterations: 1},
		{Kind: KindVectorSum, Iterations: 10, Size: 1_000_000},
		{Kind: KindFibonacci, Iterations: 1, N: 35},
		{Kind: KindPrimes, Iterations: 1, Limit: 100_000},
		{Kind: KindTextAnalysis, Iterations: 100, Repeat: 1000},
	}}
}

// Load reads a suite from a YAML file and validates it.
func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("invalid suite file %s: %w", path, err)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Suite{}, fmt.Errorf("invalid suite file %s: %w", path, err)
	}
	return s, nil
}

// applyDefaults fills in per-workload defaults so callers never see zero
// iteration counts or empty labels.
func (s *Suite) applyDefaults() {
	for i := range s.Workloads {
		w := &s.Workloads[i]
		if w.Iterations == 0 {
			w.Iterations = 1
		}
		if w.Name == "" {
			w.Name = w.Kind
		}
	}
}

// Validate checks every workload for an unknown kind or out-of-range
// parameters.
func (s Suite) Validate() error {
	if len(s.Workloads) == 0 {
		return fmt.Errorf("suite has no workloads")
	}
	for i, w := range s.Workloads {
		if err := w.validate(); err != nil {
			return fmt.Errorf("workload %d (%s): %w", i, w.Kind, err)
		}
	}
	return nil
}

func (w Workload) validate() error {
	if w.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", w.Iterations)
	}
	switch w.Kind {
	case KindVectorSum:
		if w.Size < 0 {
			return fmt.Errorf("size must be non-negative, got %d", w.Size)
		}
	case KindFibonacci:
		if w.N < 0 {
			return fmt.Errorf("n must be non-negative, got %d", w.N)
		}
	case KindPrimes:
		if w.Limit < 0 {
			return fmt.Errorf("limit must be non-negative, got %d", w.Limit)
		}
	case KindTextAnalysis:
		if w.Repeat < 0 {
			return fmt.Errorf("repeat must be non-negative, got %d", w.Repeat)
		}
	case KindAddBaseline:
		// no parameters
	default:
		return fmt.Errorf("unknown workload kind %q", w.Kind)
	}
	return nil
}

// Label returns the workload's display name.
func (w Workload) Label() string {
	if w.Name != "" {
		return w.Name
	}
	return w.Kind
}
