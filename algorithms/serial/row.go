package serial

import (
	"slices"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// Row is an ordered permutation of the pitch classes 0..universe-1
type Row struct {
	universe int
	pcs      []int
}

// NewRow validates that pcs holds every pitch class of universe exactly once
func NewRow(universe int, pcs ...int) (Row, error) {
	if err := common.ValidateModulus(universe); err != nil {
		return Row{}, err
	}
	if len(pcs) != universe {
		return Row{}, common.Errorf(common.ErrLengthMismatch, "row of %d elements in universe %d", len(pcs), universe)
	}

	seen := make([]bool, universe)
	for i, pc := range pcs {
		if pc < 0 || pc >= universe {
			return Row{}, common.Errorf(common.ErrNonPermutationRow, "element %d at position %d is outside universe %d", pc, i, universe)
		}
		if seen[pc] {
			return Row{}, common.Errorf(common.ErrNonPermutationRow, "element %d repeats at position %d", pc, i)
		}
		seen[pc] = true
	}
	return Row{universe: universe, pcs: slices.Clone(pcs)}, nil
}

// MustNewRow is NewRow for literal rows known to be valid; it panics on error
func MustNewRow(universe int, pcs ...int) Row {
	r, err := NewRow(universe, pcs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Universe returns the modulus of the row
func (r Row) Universe() int {
	return r.universe
}

// Pcs returns a copy of the row in order
func (r Row) Pcs() []int {
	return slices.Clone(r.pcs)
}

// Len returns the number of elements, equal to the universe
func (r Row) Len() int {
	return len(r.pcs)
}

func (r Row) String() string {
	return pcset.Bracket(r.pcs)
}

// AllInterval reports whether the consecutive intervals of the row take
// universe-1 distinct values, i.e. every nonzero interval appears once
func (r Row) AllInterval() bool {
	distinct := make(map[int]struct{}, r.universe)
	for _, interval := range common.AdjacencyIntervals(r.pcs, r.universe, false) {
		distinct[interval] = struct{}{}
	}
	return len(distinct) == r.universe-1
}

// segmentSet reduces an ordered segment to an unordered set
func (r Row) segmentSet(segment []int) pcset.Set {
	return pcset.MustNew(r.universe, segment...)
}
