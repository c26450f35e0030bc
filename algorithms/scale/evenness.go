package scale

import (
	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// MaxEvenInts distributes cardinality marks across universe positions as evenly
// as possible. Position a-1 is marked where floor(a*cardinality/universe)
// steps up, the same boundary test a Bresenham line uses.
func MaxEvenInts(cardinality, universe int) ([]int, error) {
	if err := validateCardinality(cardinality, universe); err != nil {
		return nil, err
	}
	if cardinality == universe {
		return chromatic(universe), nil
	}

	marks := make([]int, 0, cardinality)
	prev := cardinality / universe
	for a := 2; a <= universe; a++ {
		cur := a * cardinality / universe
		if cur != prev {
			marks = append(marks, a-2)
		}
		prev = cur
	}
	return marks, nil
}

// MaxEvenIntervals returns the cyclic step pattern of MaxEvenInts
func MaxEvenIntervals(cardinality, universe int) ([]int, error) {
	marks, err := MaxEvenInts(cardinality, universe)
	if err != nil {
		return nil, err
	}
	return common.AdjacencyIntervals(marks, universe, true), nil
}

// IsMaximallyEven reports whether the cyclic step pattern of s is a rotation of
// the maximally even pattern of the same cardinality
func IsMaximallyEven(s pcset.Set) (bool, error) {
	if s.IsEmpty() {
		return false, common.Errorf(common.ErrEmptyInput, "maximal evenness needs at least one element")
	}
	if s.Len() == s.Universe() {
		return true, nil
	}

	pattern, err := MaxEvenIntervals(s.Len(), s.Universe())
	if err != nil {
		return false, err
	}
	return common.IsRotation(common.AdjacencyIntervals(s.Pcs(), s.Universe(), true), pattern), nil
}

// GenerateMaximallyEven returns every distinct maximally even set of the given
// cardinality that contains 0: each rotation of the canonical distribution,
// transposed to start on 0, sorted, duplicates dropped.
func GenerateMaximallyEven(cardinality, universe int) ([][]int, error) {
	if err := validateCardinality(cardinality, universe); err != nil {
		return nil, err
	}
	if cardinality == 0 {
		return nil, common.Errorf(common.ErrEmptyInput, "cannot generate an empty maximally even set")
	}

	base, err := MaxEvenInts(cardinality, universe)
	if err != nil {
		return nil, err
	}

	candidates := make([][]int, 0, len(base))
	for _, rotation := range common.Rotations(base) {
		candidates = append(candidates, common.SortedUnique(pcset.TransposePcs(rotation, -rotation[0], universe), universe))
	}
	return common.UniqueSubarrays(candidates, true), nil
}

// MyhillsProperty reports whether s is maximally even with exactly two step sizes
func MyhillsProperty(s pcset.Set) (bool, error) {
	me, err := IsMaximallyEven(s)
	if err != nil || !me {
		return false, err
	}

	sizes := make(map[int]struct{})
	for _, step := range common.AdjacencyIntervals(s.Pcs(), s.Universe(), true) {
		sizes[step] = struct{}{}
	}
	return len(sizes) == 2, nil
}

func validateCardinality(cardinality, universe int) error {
	if err := common.ValidateModulus(universe); err != nil {
		return err
	}
	if cardinality < 0 || cardinality > universe {
		return common.Errorf(common.ErrLengthMismatch, "cardinality %d outside universe %d", cardinality, universe)
	}
	return nil
}

func chromatic(universe int) []int {
	all := make([]int, universe)
	for i := range all {
		all[i] = i
	}
	return all
}
