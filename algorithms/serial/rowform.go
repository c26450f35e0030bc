package serial

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
)

// FormType names the four classical row operations
type FormType int

const (
	Prime FormType = iota
	Inversion
	Retrograde
	RetrogradeInversion
)

func (t FormType) String() string {
	switch t {
	case Prime:
		return "P"
	case Inversion:
		return "I"
	case Retrograde:
		return "R"
	case RetrogradeInversion:
		return "RI"
	default:
		return "?"
	}
}

// RowForm identifies one of the 4*universe forms of a row. P_n and I_n begin
// on pitch class n; R_n and RI_n are their retrogrades.
type RowForm struct {
	Type  FormType `json:"type"`
	Level int      `json:"level"`
}

func (f RowForm) String() string {
	return fmt.Sprintf("%s%d", f.Type, f.Level)
}

// MarshalText renders the form as its label, e.g. "RI5"
func (f RowForm) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a label written by MarshalText
func (f *RowForm) UnmarshalText(text []byte) error {
	parsed, err := ParseRowForm(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseRowForm parses labels such as "P0", "i7", "R11" or "RI5"
func ParseRowForm(label string) (RowForm, error) {
	s := strings.ToUpper(strings.TrimSpace(label))

	var t FormType
	switch {
	case strings.HasPrefix(s, "RI"):
		t, s = RetrogradeInversion, s[2:]
	case strings.HasPrefix(s, "P"):
		t, s = Prime, s[1:]
	case strings.HasPrefix(s, "I"):
		t, s = Inversion, s[1:]
	case strings.HasPrefix(s, "R"):
		t, s = Retrograde, s[1:]
	default:
		return RowForm{}, common.Errorf(common.ErrUnknownRowForm, "%q", label)
	}

	level, err := strconv.Atoi(s)
	if err != nil || level < 0 {
		return RowForm{}, common.Errorf(common.ErrUnknownRowForm, "%q has no valid level", label)
	}
	return RowForm{Type: t, Level: level}, nil
}

// Form returns the row form f of r
func (r Row) Form(f RowForm) []int {
	out := make([]int, len(r.pcs))
	first := r.pcs[0]

	switch f.Type {
	case Prime, Retrograde:
		for i, pc := range r.pcs {
			out[i] = common.Modulo(pc-first+f.Level, r.universe)
		}
	default:
		for i, pc := range r.pcs {
			out[i] = common.Modulo(f.Level-pc+first, r.universe)
		}
	}

	if f.Type == Retrograde || f.Type == RetrogradeInversion {
		slices.Reverse(out)
	}
	return out
}
