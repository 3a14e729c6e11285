// Package runner executes suite workloads: it benchmarks the reference
// implementation of each algorithm and, where a counterpart exists, the
// tuned (or slow-baseline) twin, verifies both return the same value, and
// computes the speedup between them.
package runner

import (
	"fmt"
	"slices"
	"strings"

	"benchline/algo"
	"benchline/bench"
	"benchline/logging"
	"benchline/suite"
)

// sampleParagraph is the text-analysis input before the workload's repeat
// multiplier is applied.
const sampleParagraph = `
    The quick brown fox jumps over the lazy dog.
    This is a sample text for analysis.
    It contains multiple lines and words.
    Perfect for testing our text analyzer!
    `

// Timing is the measured half of a benchmark outcome: the rendered value
// plus the per-call average.
type Timing struct {
	Label      string  // which implementation ran, e.g. "sieve"
	Value      string  // human-readable rendering of the returned value
	AvgSeconds float64 // average wall-clock seconds per call
	Iterations int
}

// Row is the outcome of one workload. Tuned is nil for workloads with a
// single implementation; Match reports whether both sides returned equal
// values and is always true for unpaired workloads.
type Row struct {
	Workload suite.Workload
	Baseline Timing
	Tuned    *Timing
	Match    bool
}

// Speedup returns how many times faster the tuned side ran, or 0 when the
// workload has no pair.
func (r Row) Speedup() float64 {
	if r.Tuned == nil || r.Tuned.AvgSeconds == 0 {
		return 0
	}
	return r.Baseline.AvgSeconds / r.Tuned.AvgSeconds
}

// Report is the full run outcome, in suite order.
type Report struct {
	Rows []Row
}

// Run executes every workload in the suite sequentially. If progress is
// non-nil it is called with each completed row before the next workload
// starts. Any benchmark error aborts the run and propagates unmodified.
func Run(s suite.Suite, progress func(Row)) (Report, error) {
	var report Report
	for _, w := range s.Workloads {
		row, err := RunWorkload(w)
		if err != nil {
			return Report{}, fmt.Errorf("workload %s: %w", w.Label(), err)
		}
		report.Rows = append(report.Rows, row)
		if progress != nil {
			progress(row)
		}
	}
	return report, nil
}

// RunWorkload executes a single workload to completion on the calling
// goroutine.
func RunWorkload(w suite.Workload) (Row, error) {
	logging.Logger.Debug("Running workload", "kind", w.Kind, "iterations", w.Iterations)

	switch w.Kind {
	case suite.KindAddBaseline:
		return runAdd(w)
	case suite.KindVectorSum:
		return runVectorSum(w)
	case suite.KindFibonacci:
		return runFibonacci(w)
	case suite.KindPrimes:
		return runPrimes(w)
	case suite.KindTextAnalysis:
		return runTextAnalysis(w)
	default:
		return Row{}, fmt.Errorf("unknown workload kind %q", w.Kind)
	}
}

func runAdd(w suite.Workload) (Row, error) {
	res, err := bench.Measure(w.Iterations, func() (int, error) {
		return algo.Add(42, 58), nil
	})
	if err != nil {
		return Row{}, err
	}
	return Row{
		Workload: w,
		Baseline: Timing{
			Label:      "add",
			Value:      fmt.Sprintf("42 + 58 = %d", res.Value),
			AvgSeconds: res.AvgSeconds,
			Iterations: res.Iterations,
		},
		Match: true,
	}, nil
}

func runVectorSum(w suite.Workload) (Row, error) {
	nums := make([]int, w.Size)
	for i := range nums {
		nums[i] = i
	}

	res, err := bench.Measure(w.Iterations, func() (int, error) {
		return algo.SumSequence(nums), nil
	})
	if err != nil {
		return Row{}, err
	}
	return Row{
		Workload: w,
		Baseline: Timing{
			Label:      "loop sum",
			Value:      fmt.Sprintf("sum = %d", res.Value),
			AvgSeconds: res.AvgSeconds,
			Iterations: res.Iterations,
		},
		Match: true,
	}, nil
}

func runFibonacci(w suite.Workload) (Row, error) {
	naive, err := bench.Measure(w.Iterations, func() (int, error) {
		return algo.Fibonacci(w.N)
	})
	if err != nil {
		return Row{}, err
	}

	iter, err := bench.Measure(w.Iterations, func() (int, error) {
		return algo.FibonacciIterative(w.N)
	})
	if err != nil {
		return Row{}, err
	}

	return Row{
		Workload: w,
		Baseline: Timing{
			Label:      "recursive",
			Value:      fmt.Sprintf("fib(%d) = %d", w.N, naive.Value),
			AvgSeconds: naive.AvgSeconds,
			Iterations: naive.Iterations,
		},
		Tuned: &Timing{
			Label:      "iterative",
			Value:      fmt.Sprintf("fib(%d) = %d", w.N, iter.Value),
			AvgSeconds: iter.AvgSeconds,
			Iterations: iter.Iterations,
		},
		Match: naive.Value == iter.Value,
	}, nil
}

func runPrimes(w suite.Workload) (Row, error) {
	trial, err := bench.Measure(w.Iterations, func() ([]int, error) {
		return algo.FindPrimesTrialDivision(w.Limit)
	})
	if err != nil {
		return Row{}, err
	}

	sieve, err := bench.Measure(w.Iterations, func() ([]int, error) {
		return algo.FindPrimes(w.Limit)
	})
	if err != nil {
		return Row{}, err
	}

	return Row{
		Workload: w,
		Baseline: Timing{
			Label:      "trial division",
			Value:      fmt.Sprintf("%d primes ≤ %d", len(trial.Value), w.Limit),
			AvgSeconds: trial.AvgSeconds,
			Iterations: trial.Iterations,
		},
		Tuned: &Timing{
			Label:      "sieve",
			Value:      fmt.Sprintf("%d primes ≤ %d", len(sieve.Value), w.Limit),
			AvgSeconds: sieve.AvgSeconds,
			Iterations: sieve.Iterations,
		},
		Match: slices.Equal(trial.Value, sieve.Value),
	}, nil
}

func runTextAnalysis(w suite.Workload) (Row, error) {
	text := strings.Repeat(sampleParagraph, w.Repeat)

	res, err := bench.Measure(w.Iterations, func() ([3]int, error) {
		lines, words, chars := algo.AnalyzeText(text)
		return [3]int{lines, words, chars}, nil
	})
	if err != nil {
		return Row{}, err
	}
	return Row{
		Workload: w,
		Baseline: Timing{
			Label:      "analyze",
			Value:      fmt.Sprintf("%d lines, %d words, %d chars", res.Value[0], res.Value[1], res.Value[2]),
			AvgSeconds: res.AvgSeconds,
			Iterations: res.Iterations,
		},
		Match: true,
	}, nil
}
