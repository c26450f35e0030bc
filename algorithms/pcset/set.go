package pcset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// Set is an unordered pitch-class collection within a modular universe
type Set struct {
	universe int
	pcs      []int
}

// New creates a set from raw integers. Values are reduced modulo universe,
// sorted and deduplicated.
func New(universe int, pcs ...int) (Set, error) {
	if err := common.ValidateModulus(universe); err != nil {
		return Set{}, err
	}
	return Set{universe: universe, pcs: common.SortedUnique(pcs, universe)}, nil
}

// MustNew is New for literal inputs known to be valid; it panics on error
func MustNew(universe int, pcs ...int) Set {
	s, err := New(universe, pcs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Universe returns the modulus the set lives in
func (s Set) Universe() int {
	return s.universe
}

// Pcs returns a copy of the sorted pitch classes
func (s Set) Pcs() []int {
	return slices.Clone(s.pcs)
}

// Len returns the cardinality of the set
func (s Set) Len() int {
	return len(s.pcs)
}

// IsEmpty reports whether the set has no elements
func (s Set) IsEmpty() bool {
	return len(s.pcs) == 0
}

// Transpose returns Tn of the set
func (s Set) Transpose(n int) Set {
	return Set{universe: s.universe, pcs: common.SortedUnique(TransposePcs(s.pcs, n, s.universe), s.universe)}
}

// Invert returns TnI of the set, each element x mapped to n - x
func (s Set) Invert(n int) Set {
	return Set{universe: s.universe, pcs: common.SortedUnique(InvertPcs(s.pcs, n, s.universe), s.universe)}
}

// Complement returns the pitch classes of the universe absent from the set
func (s Set) Complement() Set {
	var out []int
	for pc := 0; pc < s.universe; pc++ {
		if _, found := slices.BinarySearch(s.pcs, pc); !found {
			out = append(out, pc)
		}
	}
	return Set{universe: s.universe, pcs: out}
}

// Equal reports whether both sets share universe and elements
func (s Set) Equal(other Set) bool {
	return s.universe == other.universe && slices.Equal(s.pcs, other.pcs)
}

// String renders the set as [a,b,c]
func (s Set) String() string {
	return Bracket(s.pcs)
}

// Bracket renders a sequence as [a,b,c]
func Bracket(pcs []int) string {
	parts := make([]string, len(pcs))
	for i, pc := range pcs {
		parts[i] = strconv.Itoa(pc)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// TransposePcs adds n to every element, keeping the input order
func TransposePcs(pcs []int, n, universe int) []int {
	out := make([]int, len(pcs))
	for i, pc := range pcs {
		out[i] = common.Modulo(pc+n, universe)
	}
	return out
}

// InvertPcs maps every element x to n - x, keeping the input order
func InvertPcs(pcs []int, n, universe int) []int {
	out := make([]int, len(pcs))
	for i, pc := range pcs {
		out[i] = common.Modulo(n-pc, universe)
	}
	return out
}

func (s Set) requireElements() error {
	if len(s.pcs) == 0 {
		return common.Errorf(common.ErrEmptyInput, "set in universe %d has no elements", s.universe)
	}
	return nil
}

func sameUniverse(a, b Set) error {
	if a.universe != b.universe {
		return common.Errorf(common.ErrUniverseMismatch, "universe %d vs %d", a.universe, b.universe)
	}
	return nil
}
