package pcset_test

import (
	"fmt"

	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

func ExampleSet_PrimeForm() {
	s, err := pcset.New(12, 11, 2, 7)
	if err != nil {
		panic(err)
	}
	norm, _ := s.NormalOrder()
	prime, _ := s.PrimeForm()
	fmt.Println(norm, prime, s.IntervalClassVector())
	// Output: [7 11 2] [0 3 7] [0 0 1 1 1 0]
}

func ExampleCompare() {
	rel, err := pcset.Compare(pcset.MustNew(12, 0, 1, 4, 6), pcset.MustNew(12, 0, 1, 3, 7))
	if err != nil {
		panic(err)
	}
	fmt.Println(rel.Kind, "-", rel)
	// Output: z-related - [0,1,4,6] and [0,1,3,7] are Z related.
}
