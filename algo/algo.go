// Package algo provides the reference algorithm library: small, pure,
// deterministic functions used as correctness and performance baselines.
// The reference versions are deliberately literal implementations; tuned
// counterparts live in fast.go.
package algo

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidArgument is returned when an input violates a function's
// contract (negative sizes or limits).
var ErrInvalidArgument = errors.New("invalid argument")

// SumSequence returns the arithmetic sum of all elements. An empty or nil
// slice sums to 0. Accumulation uses int, which is 64 bits on all platforms
// this tool targets; the canonical 1,000,000-element workload stays well
// inside that range.
func SumSequence(nums []int) int {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return sum
}

// Fibonacci computes the n-th Fibonacci number using the naive recursive
// definition: fib(0)=0, fib(1)=1, fib(k)=fib(k-1)+fib(k-2).
//
// The exponential-time recursion is intentional, not an oversight: the
// benchmark exists to contrast this literal definition against the tuned
// iterative form, so the O(2^n) work must be preserved. Do not memoize.
//
// Negative n is rejected with ErrInvalidArgument.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: fibonacci index must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return fibNaive(n), nil
}

func fibNaive(n int) int {
	if n <= 1 {
		return n
	}
	return fibNaive(n-1) + fibNaive(n-2)
}

// FindPrimes returns all primes up to and including limit, ascending, using
// the Sieve of Eratosthenes. Limits below 2 yield an empty slice. Negative
// limits are rejected with ErrInvalidArgument.
func FindPrimes(limit int) ([]int, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: prime limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}
	if limit < 2 {
		return []int{}, nil
	}

	sieve := make([]bool, limit+1)
	for i := range sieve {
		sieve[i] = true
	}
	sieve[0], sieve[1] = false, false

	for i := 2; i*i <= limit; i++ {
		if !sieve[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			sieve[j] = false
		}
	}

	primes := make([]int, 0, limit/2)
	for i, isPrime := range sieve {
		if isPrime {
			primes = append(primes, i)
		}
	}
	return primes, nil
}

// AnalyzeText derives three independent counts from text, in fixed order:
// line count, word count, and character (code point) count.
//
// Lines are segments between universal newline boundaries (\n, \r, \r\n); a
// trailing newline does not produce an extra empty segment. Words are maximal
// runs of non-whitespace. Characters include whitespace and newlines.
func AnalyzeText(text string) (lines, words, chars int) {
	lines = countLines(text)
	words = len(strings.Fields(text))
	chars = utf8.RuneCountInString(text)
	return lines, words, chars
}

// countLines counts line segments using split-and-drop-trailing semantics:
// "a\nb" and "a\nb\n" both have two lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	endsWithBreak := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
			endsWithBreak = i == len(s)-1
		case '\r':
			n++
			// \r\n is a single boundary
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			endsWithBreak = i == len(s)-1
		}
	}
	if !endsWithBreak {
		n++
	}
	return n
}
