package scale

import (
	"slices"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// WellFormed looks for a generator g in 1..universe/2 such that the collection
// {0, g, 2g, ...} with as many elements as s has the same cyclic step pattern
// as s. It returns the smallest such g.
func WellFormed(s pcset.Set) (generator int, ok bool, err error) {
	if s.IsEmpty() {
		return 0, false, common.Errorf(common.ErrEmptyInput, "well-formedness needs at least one element")
	}

	universe := s.Universe()
	steps := common.AdjacencyIntervals(s.Pcs(), universe, true)

	for g := 1; g <= universe/2; g++ {
		generated := make([]int, s.Len())
		for a := range generated {
			generated[a] = common.Modulo(a*g, universe)
		}
		slices.Sort(generated)

		if common.IsRotation(common.AdjacencyIntervals(generated, universe, true), steps) {
			return g, true, nil
		}
	}
	return 0, false, nil
}

// IsWellFormed reports whether s is generated by a single interval
func IsWellFormed(s pcset.Set) (bool, error) {
	_, ok, err := WellFormed(s)
	return ok, err
}

// Degenerate reports whether s is well-formed with a generator that is a
// nontrivial factor of the universe
func Degenerate(s pcset.Set) (bool, error) {
	g, ok, err := WellFormed(s)
	if err != nil || !ok {
		return false, err
	}
	return slices.Contains(common.NontrivialFactors(s.Universe()), g), nil
}

// GenerateWellFormed stacks interval cardinality times from start, reduced
// modulo universe
func GenerateWellFormed(start, interval, cardinality, universe int) (pcset.Set, error) {
	if cardinality < 0 {
		return pcset.Set{}, common.Errorf(common.ErrLengthMismatch, "cardinality %d is negative", cardinality)
	}
	values := make([]int, cardinality)
	for a := range values {
		values[a] = start + interval*a
	}
	return pcset.New(universe, values...)
}
