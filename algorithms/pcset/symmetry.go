package pcset

import (
	"slices"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// Axis is an axis of inversional symmetry through two opposite points of the
// pitch-class circle. Half-integer points fall between two pitch classes.
type Axis struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Symmetry returns one axis for every In that maps the set onto itself
func (s Set) Symmetry() ([]Axis, error) {
	if err := s.requireElements(); err != nil {
		return nil, err
	}

	axes := []Axis{}
	for n := 0; n < s.universe; n++ {
		if slices.Equal(common.SortedUnique(InvertPcs(s.pcs, n, s.universe), s.universe), s.pcs) {
			half := float64(n) / 2
			axes = append(axes, Axis{From: half, To: half + float64(s.universe)/2})
		}
	}
	return axes, nil
}

// InversionallySymmetric reports whether some In maps the set onto itself
func (s Set) InversionallySymmetric() bool {
	axes, err := s.Symmetry()
	return err == nil && len(axes) > 0
}
