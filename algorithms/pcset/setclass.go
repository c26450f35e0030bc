package pcset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// Operation distinguishes transposition from inversion
type Operation int

const (
	Transposition Operation = iota
	Inversion
)

func (op Operation) String() string {
	switch op {
	case Transposition:
		return "T"
	case Inversion:
		return "I"
	default:
		return "?"
	}
}

// Transform is a labeled member of the T/I group: Tn or In
type Transform struct {
	Op    Operation
	Level int
}

func (t Transform) String() string {
	return t.Op.String() + strconv.Itoa(t.Level)
}

// MarshalText renders the transform as its label, so JSON output reads "T3"
func (t Transform) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a "T3" or "I3" label
func (t *Transform) UnmarshalText(text []byte) error {
	parsed, err := ParseTransform(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTransform parses a "Tn" or "In" label
func ParseTransform(label string) (Transform, error) {
	label = strings.TrimSpace(label)
	if len(label) < 2 {
		return Transform{}, fmt.Errorf("invalid transform label %q", label)
	}

	var op Operation
	switch strings.ToUpper(label[:1]) {
	case "T":
		op = Transposition
	case "I":
		op = Inversion
	default:
		return Transform{}, fmt.Errorf("invalid transform label %q", label)
	}

	level, err := strconv.Atoi(label[1:])
	if err != nil || level < 0 {
		return Transform{}, fmt.Errorf("invalid transform level in %q", label)
	}
	return Transform{Op: op, Level: level}, nil
}

// Apply transforms pcs, keeping their order
func (t Transform) Apply(pcs []int, universe int) []int {
	if t.Op == Inversion {
		return InvertPcs(pcs, t.Level, universe)
	}
	return TransposePcs(pcs, t.Level, universe)
}

// Member is one transformation of a set, stored in normal order
type Member struct {
	Transform Transform `json:"transform"`
	Pcs       []int     `json:"pcs"`
}

// SetClass lists the normal order of a set under every transposition T0..T(n-1)
// followed by every inversion I0..I(n-1)
type SetClass struct {
	Universe int      `json:"universe"`
	Members  []Member `json:"members"`
}

// SetClass builds the set-class of s
func (s Set) SetClass() (SetClass, error) {
	if err := s.requireElements(); err != nil {
		return SetClass{}, err
	}
	return setClass(s.pcs, s.universe), nil
}

func setClass(pcs []int, universe int) SetClass {
	members := make([]Member, 0, 2*universe)
	for _, op := range []Operation{Transposition, Inversion} {
		for level := 0; level < universe; level++ {
			t := Transform{Op: op, Level: level}
			members = append(members, Member{
				Transform: t,
				Pcs:       normalOrder(t.Apply(pcs, universe), universe),
			})
		}
	}
	return SetClass{Universe: universe, Members: members}
}

// Lookup returns the member produced by t
func (sc SetClass) Lookup(t Transform) ([]int, bool) {
	for _, m := range sc.Members {
		if m.Transform == t {
			return m.Pcs, true
		}
	}
	return nil, false
}

// Distinct returns the distinct sets in the class, first occurrence kept
func (sc SetClass) Distinct() [][]int {
	all := make([][]int, len(sc.Members))
	for i, m := range sc.Members {
		all[i] = m.Pcs
	}
	return common.UniqueSubarrays(all, false)
}

// Matching returns the transforms whose member holds the same elements as pcs
func (sc SetClass) Matching(pcs []int) []Transform {
	var matches []Transform
	for _, m := range sc.Members {
		if common.SameElements(m.Pcs, pcs) {
			matches = append(matches, m.Transform)
		}
	}
	return matches
}
