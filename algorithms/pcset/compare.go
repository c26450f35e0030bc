package pcset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// RelationKind classifies the outcome of Compare
type RelationKind int

const (
	// Unrelated: equal cardinality, no T/I mapping and different interval content
	Unrelated RelationKind = iota
	// Equivalent: equal cardinality, related by at least one Tn or In
	Equivalent
	// ZRelated: equal cardinality and interval-class vector without a T/I mapping
	ZRelated
	// LiteralSubset: the smaller set is contained in the larger as given
	LiteralSubset
	// AbstractSubset: some transformation of the smaller set is contained in the larger
	AbstractSubset
	// NoInclusion: different cardinalities without literal or abstract inclusion
	NoInclusion
)

func (k RelationKind) String() string {
	switch k {
	case Unrelated:
		return "unrelated"
	case Equivalent:
		return "equivalent"
	case ZRelated:
		return "z-related"
	case LiteralSubset:
		return "literal-subset"
	case AbstractSubset:
		return "abstract-subset"
	case NoInclusion:
		return "no-inclusion"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name
func (k RelationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Relation describes how two sets relate.
//
// For equal cardinalities First and Second are the normal orders of the two
// operands in call order, and Transforms lists every t with t(Second) = First.
// For different cardinalities First is the smaller set and Second the larger;
// Count is the number of subsets of Second in the set-class of First.
type Relation struct {
	Kind       RelationKind `json:"kind"`
	Transforms []Transform  `json:"transforms,omitempty"`
	Count      int          `json:"count,omitempty"`
	First      []int        `json:"first"`
	Second     []int        `json:"second"`
}

func (r Relation) String() string {
	first, second := Bracket(r.First), Bracket(r.Second)
	switch r.Kind {
	case Equivalent:
		labels := make([]string, len(r.Transforms))
		for i, t := range r.Transforms {
			labels[i] = t.String()
		}
		return fmt.Sprintf("%s maps onto %s under %s.", second, first, strings.Join(labels, ", "))
	case ZRelated:
		return fmt.Sprintf("%s and %s are Z related.", first, second)
	case LiteralSubset:
		return fmt.Sprintf("%s is a literal subset of %s.", first, second)
	case AbstractSubset:
		return fmt.Sprintf("%s is an abstract subset of %s. Contained %d times.", first, second, r.Count)
	case NoInclusion:
		return "No inclusionary relationship."
	default:
		return "No relationship."
	}
}

// Compare determines the relationship between a and b. Sets of equal
// cardinality are tested for T/I equivalence, then for the Z-relation. Sets of
// different cardinality are tested for literal, then abstract, inclusion of the
// smaller in the larger.
func Compare(a, b Set) (Relation, error) {
	if err := sameUniverse(a, b); err != nil {
		return Relation{}, err
	}
	if err := a.requireElements(); err != nil {
		return Relation{}, err
	}
	if err := b.requireElements(); err != nil {
		return Relation{}, err
	}

	universe := a.universe
	normA := normalOrder(a.pcs, universe)
	normB := normalOrder(b.pcs, universe)

	if a.Len() == b.Len() {
		rel := Relation{Kind: Unrelated, First: normA, Second: normB}
		if matches := setClass(normB, universe).Matching(normA); len(matches) > 0 {
			rel.Kind = Equivalent
			rel.Transforms = matches
			return rel, nil
		}
		if slices.Equal(intervalClassVector(a.pcs, universe), intervalClassVector(b.pcs, universe)) {
			rel.Kind = ZRelated
		}
		return rel, nil
	}

	smaller, larger := normA, normB
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	rel := Relation{Kind: NoInclusion, First: smaller, Second: larger}

	candidates, err := common.SubsetsOfCardinality(larger, len(smaller))
	if err != nil {
		return Relation{}, err
	}
	if len(common.SearchSubarrays(smaller, candidates)) > 0 {
		rel.Kind = LiteralSubset
		rel.Count = 1
		return rel, nil
	}

	primes := make([][]int, len(candidates))
	for i, c := range candidates {
		primes[i] = primeForm(c, universe)
	}
	if count := len(common.SearchSubarrays(primeForm(smaller, universe), primes)); count > 0 {
		rel.Kind = AbstractSubset
		rel.Count = count
	}
	return rel, nil
}
