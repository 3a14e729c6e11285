package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 100, Add(42, 58))
	assert.Equal(t, 0, Add(-5, 5))
}

func TestFibonacciIterativeAgreesWithRecursive(t *testing.T) {
	for n := 0; n <= 20; n++ {
		naive, err := Fibonacci(n)
		require.NoError(t, err)
		iter, err := FibonacciIterative(n)
		require.NoError(t, err)

		assert.Equal(t, naive, iter, "fib(%d)", n)
	}
}

func TestFibonacciIterativeCanonicalInput(t *testing.T) {
	got, err := FibonacciIterative(35)
	require.NoError(t, err)
	assert.Equal(t, 9227465, got)
}

func TestFibonacciIterativeNegative(t *testing.T) {
	_, err := FibonacciIterative(-3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindPrimesTrialDivisionAgreesWithSieve(t *testing.T) {
	for _, limit := range []int{0, 1, 2, 10, 97, 1000} {
		sieve, err := FindPrimes(limit)
		require.NoError(t, err)
		trial, err := FindPrimesTrialDivision(limit)
		require.NoError(t, err)

		assert.Equal(t, sieve, trial, "limit %d", limit)
	}
}

func TestFindPrimesTrialDivisionNegative(t *testing.T) {
	_, err := FindPrimesTrialDivision(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
