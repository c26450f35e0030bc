package scale

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// CVVariant selects one of the two cardinality-equals-variety criteria
type CVVariant int

const (
	// CVPrime requires a prime cardinality (Clough and Myerson)
	CVPrime CVVariant = iota
	// CVNondegenerate requires the set not to be degenerate well-formed
	CVNondegenerate
)

func (v CVVariant) String() string {
	if v == CVNondegenerate {
		return "nondegenerate"
	}
	return "prime"
}

// ParseCVVariant accepts "prime" or "nondegenerate"
func ParseCVVariant(s string) (CVVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prime":
		return CVPrime, nil
	case "nondegenerate", "non-degenerate":
		return CVNondegenerate, nil
	default:
		return CVPrime, fmt.Errorf("unknown cardinality-equals-variety variant %q", s)
	}
}

// CardinalityEqualsVariety reports whether s has the CV property. Both variants
// bound the cardinality by universe/2 + 1.
func CardinalityEqualsVariety(s pcset.Set, variant CVVariant) (bool, error) {
	if s.IsEmpty() {
		return false, common.Errorf(common.ErrEmptyInput, "cardinality equals variety needs at least one element")
	}

	bound := s.Len() <= s.Universe()/2+1
	switch variant {
	case CVPrime:
		return common.IsPrime(s.Len()) && bound, nil
	case CVNondegenerate:
		degenerate, err := Degenerate(s)
		if err != nil {
			return false, err
		}
		return !degenerate && bound, nil
	default:
		return false, fmt.Errorf("unknown cardinality-equals-variety variant %d", variant)
	}
}
