package common

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// BinomialCoefficient returns n choose k
func BinomialCoefficient(n, k int) (int, error) {
	if n < 0 || k < 0 || k > n {
		return 0, Errorf(ErrLengthMismatch, "cannot choose %d of %d", k, n)
	}
	return combin.Binomial(n, k), nil
}

// SubsetsOfCardinality returns every size-k subset of superset, elements kept in
// superset order.
//
// Subsets are ordered by their selection bit pattern read as a binary number,
// superset[0] being the most significant bit, scanned in increasing value. For
// [a b c] and k=2 that is [b c], [a c], [a b]. Callers rely on this order.
func SubsetsOfCardinality(superset []int, k int) ([][]int, error) {
	n := len(superset)
	if k < 0 || k > n {
		return nil, Errorf(ErrLengthMismatch, "cardinality %d exceeds %d available elements", k, n)
	}
	if k == 0 {
		return [][]int{{}}, nil
	}

	combos := combin.Combinations(n, k)
	slices.SortFunc(combos, compareBitPatterns)

	subsets := make([][]int, len(combos))
	for i, combo := range combos {
		subset := make([]int, k)
		for j, idx := range combo {
			subset[j] = superset[idx]
		}
		subsets[i] = subset
	}
	return subsets, nil
}

// AllSubsets returns the subsets of every cardinality from 1 to len(superset),
// grouped by ascending cardinality
func AllSubsets(superset []int) [][]int {
	var all [][]int
	for k := 1; k <= len(superset); k++ {
		subsets, _ := SubsetsOfCardinality(superset, k)
		all = append(all, subsets...)
	}
	return all
}

// compareBitPatterns orders two equal-length ascending index combinations by the
// value of their bit patterns. The smallest index present in only one of them is
// the most significant differing bit.
func compareBitPatterns(a, b []int) int {
	for i := range a {
		switch {
		case a[i] == b[i]:
			continue
		case a[i] < b[i]:
			return 1
		default:
			return -1
		}
	}
	return 0
}
