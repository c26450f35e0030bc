package scale

import (
	"math"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// ProportionalModuloConversion rescales each element by outUniverse/inUniverse,
// rounding half up, and reduces the result modulo outUniverse. Order is kept.
func ProportionalModuloConversion(pcs []int, inUniverse, outUniverse int) ([]int, error) {
	if err := common.ValidateModulus(inUniverse); err != nil {
		return nil, err
	}
	if err := common.ValidateModulus(outUniverse); err != nil {
		return nil, err
	}

	out := make([]int, len(pcs))
	for i, pc := range pcs {
		scaled := math.Floor(float64(pc*outUniverse)/float64(inUniverse) + 0.5)
		out[i] = common.Modulo(int(scaled), outUniverse)
	}
	return out, nil
}

// ConvertSet maps s proportionally into another universe
func ConvertSet(s pcset.Set, outUniverse int) (pcset.Set, error) {
	converted, err := ProportionalModuloConversion(s.Pcs(), s.Universe(), outUniverse)
	if err != nil {
		return pcset.Set{}, err
	}
	return pcset.New(outUniverse, converted...)
}
