package pcset

import (
	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// LiteralSubsets returns every subset of the given cardinality, in the bit
// pattern order of common.SubsetsOfCardinality
func (s Set) LiteralSubsets(cardinality int) ([][]int, error) {
	return common.SubsetsOfCardinality(s.pcs, cardinality)
}

// AllLiteralSubsets returns the non-empty subsets of every cardinality, smallest first
func (s Set) AllLiteralSubsets() [][]int {
	return common.AllSubsets(s.pcs)
}

// AbstractSubsets reduces every literal subset with more than two elements to
// its prime form. With unique set, repeated prime forms are dropped.
func (s Set) AbstractSubsets(unique bool) [][]int {
	return abstractSubsets(s.AllLiteralSubsets(), s.universe, unique)
}

// AbstractSubsetsOfCardinality is AbstractSubsets restricted to one cardinality.
// Cardinalities of two or less yield no subsets.
func (s Set) AbstractSubsetsOfCardinality(cardinality int, unique bool) ([][]int, error) {
	literal, err := s.LiteralSubsets(cardinality)
	if err != nil {
		return nil, err
	}
	return abstractSubsets(literal, s.universe, unique), nil
}

func abstractSubsets(literal [][]int, universe int, unique bool) [][]int {
	primes := [][]int{}
	for _, subset := range literal {
		if len(subset) > 2 {
			primes = append(primes, primeForm(subset, universe))
		}
	}
	if unique {
		return common.UniqueSubarrays(primes, false)
	}
	return primes
}

// Inclusion is one member of a subset's set-class found inside a superset
type Inclusion struct {
	Transform Transform `json:"transform"`
	Pcs       []int     `json:"pcs"`
}

// ContainsSubset returns every member of the set-class of subset whose elements
// all belong to s, in set-class order
func (s Set) ContainsSubset(subset Set) ([]Inclusion, error) {
	if err := sameUniverse(s, subset); err != nil {
		return nil, err
	}
	if err := subset.requireElements(); err != nil {
		return nil, err
	}

	var found []Inclusion
	for _, m := range setClass(subset.pcs, s.universe).Members {
		if common.Contains(s.pcs, m.Pcs) {
			found = append(found, Inclusion{Transform: m.Transform, Pcs: m.Pcs})
		}
	}
	return found, nil
}
