// Package primes picks bucket array capacities.
package primes

// IsPrime reports whether n is prime using trial division by odd factors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest odd prime >= n (an even n is bumped to
// n+1 first, so NextPrime(2) is 3). Values below 1 are treated as 1.
func NextPrime(n int) int {
	if n < 1 {
		n = 1
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
