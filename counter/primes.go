package counter

import (
	"errors"
	"math"
)

// ErrPrimeOverflow is returned when a prime search runs out of int range.
var ErrPrimeOverflow = errors.New("counter: prime search overflow")

func isPrime(n int) bool {
	switch {
	case n == 2 || n == 3:
		return true
	case n < 2 || n%2 == 0 || n%3 == 0:
		return false
	}

	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) (int, error) {
	if n <= 2 {
		return 2, nil
	}

	for n |= 1; ; n += 2 {
		if isPrime(n) {
			return n, nil
		}
		if n > math.MaxInt-2 {
			return 0, ErrPrimeOverflow
		}
	}
}
