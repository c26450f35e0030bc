package serial

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// CombinatorialOp is an operation under which the first half of a row maps
// onto the second half (or onto itself, for the retrograde operations).
type CombinatorialOp struct {
	Type FormType `json:"type"`
	// Level is the transposition interval for P and R, the inversion index for I and RI
	Level int `json:"level"`
	// Universe is kept so P and R can print their complementary interval
	Universe int `json:"-"`
	// Form is the matrix row form that realizes the operation
	Form RowForm `json:"form"`
}

// String renders the operation as "P6/6", "R4/8", "I11" or "RI5"
func (op CombinatorialOp) String() string {
	switch op.Type {
	case Prime, Retrograde:
		return fmt.Sprintf("%s%d/%d", op.Type, op.Level, op.Universe-op.Level)
	default:
		return fmt.Sprintf("%s%d", op.Type, op.Level)
	}
}

// MarshalText renders the operation label
func (op CombinatorialOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Combinatoriality is the result of splitting a row into halves
type Combinatoriality struct {
	HalvesEquivalent bool              `json:"halves_equivalent"`
	Operations       []CombinatorialOp `json:"operations"`
}

// Combinatorial reports whether the halves share a prime form and at least one
// operation was found
func (c Combinatoriality) Combinatorial() bool {
	return c.HalvesEquivalent && len(c.Operations) > 0
}

func (c Combinatoriality) String() string {
	if !c.Combinatorial() {
		return "Not combinatorial."
	}
	labels := make([]string, len(c.Operations))
	for i, op := range c.Operations {
		labels[i] = op.String()
	}
	return strings.Join(labels, ", ")
}

// Combinatoriality splits r at universe/2 and, when both halves share a prime
// form in an even universe, reads the operations off the first half's vectors.
// An interval-class vector entry of 0 gives a P operation and an entry of
// universe/2 (the midpoint count doubled) an R operation. An index vector entry
// of 0 gives I and of universe/2 gives RI.
func (r Row) Combinatoriality() (Combinatoriality, error) {
	if r.universe < 2 {
		return Combinatoriality{}, common.Errorf(common.ErrEmptyInput, "universe %d has no halves", r.universe)
	}

	half := r.universe / 2
	first := r.segmentSet(r.pcs[:half])
	second := r.segmentSet(r.pcs[half:])

	primeA, err := first.PrimeForm()
	if err != nil {
		return Combinatoriality{}, err
	}
	primeB, err := second.PrimeForm()
	if err != nil {
		return Combinatoriality{}, err
	}

	result := Combinatoriality{Operations: []CombinatorialOp{}}
	if !slices.Equal(primeA, primeB) || r.universe%2 != 0 {
		return result, nil
	}
	result.HalvesEquivalent = true

	head := r.pcs[0]
	icv := first.IntervalClassVector()
	icv[len(icv)-1] *= 2
	for b, count := range icv {
		k := b + 1
		switch count {
		case 0:
			result.Operations = append(result.Operations, r.combinatorialOp(Prime, k, head+k))
		case half:
			result.Operations = append(result.Operations, r.combinatorialOp(Retrograde, k, head+k))
		}
	}

	for b, count := range first.IndexVector() {
		switch count {
		case 0:
			result.Operations = append(result.Operations, r.combinatorialOp(Inversion, b, b-head))
		case half:
			result.Operations = append(result.Operations, r.combinatorialOp(RetrogradeInversion, b, b-head))
		}
	}
	return result, nil
}

func (r Row) combinatorialOp(t FormType, level, formLevel int) CombinatorialOp {
	return CombinatorialOp{
		Type:     t,
		Level:    level,
		Universe: r.universe,
		Form:     RowForm{Type: t, Level: common.Modulo(formLevel, r.universe)},
	}
}
