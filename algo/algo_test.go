package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumSequence(t *testing.T) {
	assert.Equal(t, 0, SumSequence(nil))
	assert.Equal(t, 0, SumSequence([]int{}))
	assert.Equal(t, 6, SumSequence([]int{1, 2, 3}))
	assert.Equal(t, -2, SumSequence([]int{-5, 3}))
}

func TestSumSequenceOrderInvariance(t *testing.T) {
	nums := []int{7, -3, 12, 0, 99, -41, 5}
	reversed := make([]int, len(nums))
	for i, n := range nums {
		reversed[len(nums)-1-i] = n
	}

	assert.Equal(t, SumSequence(nums), SumSequence(reversed))
}

func TestSumSequenceMillionRange(t *testing.T) {
	nums := make([]int, 1_000_000)
	for i := range nums {
		nums[i] = i
	}

	assert.Equal(t, 499999500000, SumSequence(nums))
}

func TestFibonacciBaseCases(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 1, 10: 55} {
		got, err := Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "fib(%d)", n)
	}
}

func TestFibonacciRecurrence(t *testing.T) {
	for n := 2; n <= 15; n++ {
		fn, err := Fibonacci(n)
		require.NoError(t, err)
		fn1, err := Fibonacci(n - 1)
		require.NoError(t, err)
		fn2, err := Fibonacci(n - 2)
		require.NoError(t, err)

		assert.Equal(t, fn1+fn2, fn, "fib(%d) should equal fib(%d)+fib(%d)", n, n-1, n-2)
	}
}

func TestFibonacciNegative(t *testing.T) {
	_, err := Fibonacci(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindPrimesSmallLimits(t *testing.T) {
	for _, limit := range []int{0, 1} {
		primes, err := FindPrimes(limit)
		require.NoError(t, err)
		assert.Empty(t, primes, "limit %d", limit)
	}

	primes, err := FindPrimes(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, primes)

	primes, err = FindPrimes(10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7}, primes)
}

func TestFindPrimesAscending(t *testing.T) {
	for _, limit := range []int{3, 17, 100, 1000} {
		primes, err := FindPrimes(limit)
		require.NoError(t, err)
		for i := 1; i < len(primes); i++ {
			assert.Less(t, primes[i-1], primes[i])
		}
		for _, p := range primes {
			assert.LessOrEqual(t, p, limit)
		}
	}
}

func TestFindPrimesKnownCount(t *testing.T) {
	// pi(100000) = 9592
	primes, err := FindPrimes(100_000)
	require.NoError(t, err)
	assert.Len(t, primes, 9592)
}

func TestFindPrimesNegative(t *testing.T) {
	_, err := FindPrimes(-5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAnalyzeText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
		words int
		chars int
	}{
		{"canonical", "a b\nc\n", 2, 3, 6},
		{"empty", "", 0, 0, 0},
		{"no trailing newline", "a b\nc", 2, 3, 5},
		{"blank lines", "\n\n", 2, 0, 2},
		{"crlf", "a\r\nb\r\n", 2, 2, 6},
		{"bare cr", "a\rb", 2, 2, 3},
		{"leading and trailing spaces", "  hello   world  ", 1, 2, 17},
		{"multibyte runes", "héllo wörld\n", 1, 2, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, words, chars := AnalyzeText(tt.text)
			assert.Equal(t, tt.lines, lines, "lines")
			assert.Equal(t, tt.words, words, "words")
			assert.Equal(t, tt.chars, chars, "chars")
		})
	}
}

// The reference functions are pure: identical input must give identical
// output across calls.
func TestIdempotence(t *testing.T) {
	nums := []int{3, 1, 4, 1, 5}
	assert.Equal(t, SumSequence(nums), SumSequence(nums))

	a, err := Fibonacci(12)
	require.NoError(t, err)
	b, err := Fibonacci(12)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	p1, err := FindPrimes(50)
	require.NoError(t, err)
	p2, err := FindPrimes(50)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	l1, w1, c1 := AnalyzeText("x y\nz")
	l2, w2, c2 := AnalyzeText("x y\nz")
	assert.Equal(t, []int{l1, w1, c1}, []int{l2, w2, c2})
}
