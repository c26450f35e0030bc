package common

import (
	"fmt"
	"slices"
)

// Modular arithmetic kernel shared by every set-theory package

// Modulo returns value reduced into [0, modulus). The remainder is corrected once,
// which covers every negative value. modulus must be positive.
func Modulo(value, modulus int) int {
	r := value % modulus
	if r < 0 {
		r += modulus
	}
	return r
}

// IntervalClass folds an interval into its unordered size, never more than modulus/2
func IntervalClass(value, modulus int) int {
	return min(Modulo(value, modulus), Modulo(modulus-value, modulus))
}

// Reduce maps every value into [0, modulus) and returns a new slice
func Reduce(values []int, modulus int) []int {
	reduced := make([]int, len(values))
	for i, v := range values {
		reduced[i] = Modulo(v, modulus)
	}
	return reduced
}

// SortedUnique reduces values modulo modulus, then sorts ascending and drops duplicates
func SortedUnique(values []int, modulus int) []int {
	reduced := Reduce(values, modulus)
	slices.Sort(reduced)
	return slices.Compact(reduced)
}

// AdjacencyIntervals returns the intervals between consecutive elements. With wrap
// set, the first element is appended again so the series closes the cycle.
func AdjacencyIntervals(values []int, modulus int, wrap bool) []int {
	if len(values) == 0 {
		return []int{}
	}

	seq := values
	if wrap {
		seq = make([]int, 0, len(values)+1)
		seq = append(seq, values...)
		seq = append(seq, values[0])
	}

	intervals := make([]int, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		intervals = append(intervals, Modulo(seq[i]-seq[i-1], modulus))
	}
	return intervals
}

// Factors returns every positive divisor of n in ascending order
func Factors(n int) []int {
	if n < 1 {
		return []int{}
	}

	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i == 0 {
			low = append(low, i)
			if i != n/i {
				high = append(high, n/i)
			}
		}
	}

	slices.Reverse(high)
	return append(low, high...)
}

// NontrivialFactors returns the divisors of n other than 1 and n itself
func NontrivialFactors(n int) []int {
	facts := Factors(n)
	if len(facts) <= 2 {
		return []int{}
	}
	return facts[1 : len(facts)-1]
}

// IsPrime reports whether n is a prime number
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Join renders values as a pipe-delimited key, used for canonical comparisons
func Join(values []int) string {
	b := make([]byte, 0, len(values)*3)
	for i, v := range values {
		if i > 0 {
			b = append(b, '|')
		}
		b = fmt.Appendf(b, "%d", v)
	}
	return string(b)
}

// Errorf wraps a sentinel error with a formatted description
func Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
