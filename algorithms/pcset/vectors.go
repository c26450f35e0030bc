package pcset

import (
	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// IntervalClassVector counts the interval classes formed by every unordered pair.
// Position k-1 holds interval class k for k = 1..universe/2; intervals k and
// universe-k are summed, except the midpoint of an even universe which counts once.
func (s Set) IntervalClassVector() []int {
	return intervalClassVector(s.pcs, s.universe)
}

// IndexVector counts the sums of every ordered pair (each element paired with
// itself included). Position k holds the number of pairs summing to k.
func (s Set) IndexVector() []int {
	return indexVector(s.pcs, s.universe)
}

func intervalClassVector(pcs []int, universe int) []int {
	vector := make([]int, universe/2)
	for a := 0; a < len(pcs); a++ {
		for b := a + 1; b < len(pcs); b++ {
			ic := common.IntervalClass(pcs[b]-pcs[a], universe)
			if ic > 0 {
				vector[ic-1]++
			}
		}
	}
	return vector
}

func indexVector(pcs []int, universe int) []int {
	vector := make([]int, universe)
	for _, a := range pcs {
		for _, b := range pcs {
			vector[common.Modulo(a+b, universe)]++
		}
	}
	return vector
}
