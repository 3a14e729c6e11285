// Package bench is a minimal timing harness: it runs an operation a fixed
// number of times on the calling goroutine and reports the average wall-clock
// time per call.
package bench

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidIterations is returned when Measure is asked for a non-positive
// iteration count.
var ErrInvalidIterations = errors.New("invalid iteration count")

// Result holds the outcome of one Measure call. It is immutable after
// creation; only the final iteration's value is retained.
type Result[T any] struct {
	Value      T
	Iterations int
	AvgSeconds float64
}

// PerCall returns the average latency as a time.Duration, for display.
func (r Result[T]) PerCall() time.Duration {
	return time.Duration(r.AvgSeconds * float64(time.Second))
}

// Measure invokes op exactly iterations times, sequentially, and returns the
// last value together with the average seconds per call. Timing uses
// time.Since, which reads the monotonic clock.
//
// If op fails, the error is returned unmodified and immediately; no
// iterations are retried and nothing is caught. iterations must be positive.
func Measure[T any](iterations int, op func() (T, error)) (Result[T], error) {
	var zero Result[T]
	if iterations < 1 {
		return zero, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	var last T
	start := time.Now()
	for i := 0; i < iterations; i++ {
		v, err := op()
		if err != nil {
			return zero, err
		}
		last = v
	}
	elapsed := time.Since(start)

	return Result[T]{
		Value:      last,
		Iterations: iterations,
		AvgSeconds: elapsed.Seconds() / float64(iterations),
	}, nil
}
