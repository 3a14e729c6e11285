package algo

import "fmt"

// Tuned and baseline counterparts to the reference functions. Each pair
// shares a contract with its reference twin so benchmark runs can verify
// the returned values match before comparing timings.

// Add returns a+b. It exists as a call-overhead baseline workload.
func Add(a, b int) int {
	return a + b
}

// FibonacciIterative computes the n-th Fibonacci number in O(n) time. It is
// the tuned counterpart to Fibonacci and must agree with it for all valid n.
func FibonacciIterative(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: fibonacci index must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if n <= 1 {
		return n, nil
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// FindPrimesTrialDivision returns the primes up to limit by testing each
// candidate individually. It is the slow baseline for FindPrimes: the sieve
// must beat it, never replace it. O(limit * sqrt(limit)).
func FindPrimesTrialDivision(limit int) ([]int, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: prime limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}
	primes := []int{}
	for n := 2; n <= limit; n++ {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes, nil
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
