package common

import "errors"

var (
	// ErrInvalidModulus indicates a universe (modulus) less than one.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrUniverseMismatch indicates two operands drawn from different universes.
	ErrUniverseMismatch = errors.New("universe mismatch")
	// ErrLengthMismatch indicates a row whose length differs from its universe, or a
	// requested cardinality larger than the elements available.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrEmptyInput indicates an operation that needs more elements than it was given.
	ErrEmptyInput = errors.New("empty input")
	// ErrNonPermutationRow indicates a tone row with repeated or missing pitch classes.
	ErrNonPermutationRow = errors.New("row is not a permutation of the universe")
	// ErrUnknownRowForm indicates a row-form label that is not P, I, R or RI plus a level.
	ErrUnknownRowForm = errors.New("unknown row form")
	// ErrUnknownPitch indicates a pitch token that is neither an integer nor a known name.
	ErrUnknownPitch = errors.New("unknown pitch")
)

// ValidateModulus returns ErrInvalidModulus when universe is not positive
func ValidateModulus(universe int) error {
	if universe < 1 {
		return Errorf(ErrInvalidModulus, "universe %d must be at least 1", universe)
	}
	return nil
}
