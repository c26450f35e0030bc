package pcset

import (
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// Representation selects how pitch classes are rendered
type Representation int

const (
	Numeric Representation = iota
	Named
)

// NamedUniverse is the only universe with pitch names
const NamedUniverse = 12

var pitchNames = [NamedUniverse]string{
	"C", "C♯/D♭", "D", "D♯/E♭", "E", "F", "F♯/G♭", "G", "G♯/A♭", "A", "A♯/B♭", "B",
}

var naturals = map[rune]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

func (r Representation) String() string {
	if r == Named {
		return "named"
	}
	return "numeric"
}

// ParseRepresentation accepts "numeric" or "named"
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "numeric", "number", "numbers":
		return Numeric, nil
	case "named", "name", "names":
		return Named, nil
	default:
		return Numeric, common.Errorf(common.ErrUnknownPitch, "unknown representation %q", s)
	}
}

// PitchName returns the note name of pc. Only universe 12 has names.
func PitchName(pc, universe int) (string, error) {
	if universe != NamedUniverse {
		return "", common.Errorf(common.ErrUnknownPitch, "pitch names are not available in universe %d", universe)
	}
	return pitchNames[common.Modulo(pc, universe)], nil
}

// FormatPitches renders pcs as decimal strings or as note names
func FormatPitches(pcs []int, universe int, rep Representation) ([]string, error) {
	out := make([]string, len(pcs))
	for i, pc := range pcs {
		if rep == Numeric {
			out[i] = strconv.Itoa(pc)
			continue
		}
		name, err := PitchName(pc, universe)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}

// ParsePitch reads an integer (reduced modulo universe) or, in universe 12, a
// note name such as "E", "F#", "Bb", "C♯" or "C♯/D♭"
func ParsePitch(token string, universe int) (int, error) {
	if err := common.ValidateModulus(universe); err != nil {
		return 0, err
	}

	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		return common.Modulo(n, universe), nil
	}
	if universe != NamedUniverse {
		return 0, common.Errorf(common.ErrUnknownPitch, "%q is not an integer and universe %d has no names", token, universe)
	}

	// "C♯/D♭" spells one pitch two ways; the first spelling is enough
	if slash := strings.IndexRune(token, '/'); slash > 0 {
		token = token[:slash]
	}

	runes := []rune(token)
	if len(runes) == 0 {
		return 0, common.Errorf(common.ErrUnknownPitch, "empty pitch token")
	}
	pc, ok := naturals[toUpper(runes[0])]
	if !ok {
		return 0, common.Errorf(common.ErrUnknownPitch, "%q", token)
	}
	for _, r := range runes[1:] {
		switch r {
		case '#', '♯':
			pc++
		case 'b', '♭':
			pc--
		default:
			return 0, common.Errorf(common.ErrUnknownPitch, "%q", token)
		}
	}
	return common.Modulo(pc, universe), nil
}

// ParsePitches parses every token with ParsePitch
func ParsePitches(tokens []string, universe int) ([]int, error) {
	pcs := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		pc, err := ParsePitch(tok, universe)
		if err != nil {
			return nil, err
		}
		pcs = append(pcs, pc)
	}
	return pcs, nil
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
