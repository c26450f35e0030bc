package pcset

import (
	"slices"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// NormalOrder returns the Straus-Rahn normal order of the set
func (s Set) NormalOrder() ([]int, error) {
	if err := s.requireElements(); err != nil {
		return nil, err
	}
	return normalOrder(s.pcs, s.universe), nil
}

// PrimeForm returns the prime form of the set, packed to the left
func (s Set) PrimeForm() ([]int, error) {
	if err := s.requireElements(); err != nil {
		return nil, err
	}
	return primeForm(s.pcs, s.universe), nil
}

// normalOrder runs the Straus-Rahn reduction over the rotations of the sorted
// input. Starting at the last position, only rotations with the smallest span
// from their first element survive; the position moves left until one rotation
// is left. Rotations still tied after position 1 resolve to the earliest one.
// pcs must be non-empty.
func normalOrder(pcs []int, universe int) []int {
	sorted := slices.Clone(pcs)
	slices.Sort(sorted)
	candidates := common.Rotations(sorted)

	for index := len(sorted) - 1; index > 0; index-- {
		smallest := universe
		var survivors [][]int
		for _, rotation := range candidates {
			span := common.Modulo(rotation[index]-rotation[0], universe)
			switch {
			case span < smallest:
				smallest = span
				survivors = [][]int{rotation}
			case span == smallest:
				survivors = append(survivors, rotation)
			}
		}
		candidates = survivors
		if len(candidates) == 1 {
			break
		}
	}

	return candidates[0]
}

// primeForm compares the normal order with the normal order of its inversion
// and keeps whichever has the smaller interval at the first position where
// their adjacency intervals differ. A full tie keeps the uninverted form.
func primeForm(pcs []int, universe int) []int {
	norm := normalOrder(pcs, universe)
	inverted := normalOrder(InvertPcs(norm, 0, universe), universe)

	normIntervals := common.AdjacencyIntervals(norm, universe, false)
	invIntervals := common.AdjacencyIntervals(inverted, universe, false)

	winner := norm
	for i := range normIntervals {
		if normIntervals[i] < invIntervals[i] {
			break
		}
		if normIntervals[i] > invIntervals[i] {
			winner = inverted
			break
		}
	}

	return TransposePcs(winner, -winner[0], universe)
}
