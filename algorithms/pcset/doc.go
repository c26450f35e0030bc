// Package pcset implements the pitch-class set engine: normal order and prime
// form (Straus-Rahn), interval-class and index vectors, set-classes, T/I and
// Z-relation testing, literal and abstract inclusion, and inversional symmetry.
//
// A Set is an immutable value holding its universe (modulus) and its pitch
// classes reduced into [0, universe), sorted and without duplicates. Every
// derived structure is recomputed on demand from the current value.
//
// Sequences that callers treat as ordered (normal orders, prime forms,
// set-class members) are returned as plain []int. Operations that need at
// least one element fail with common.ErrEmptyInput; operands drawn from
// different universes fail with common.ErrUniverseMismatch.
//
// Exhaustive subset enumeration grows as 2^n in the size of the set. Callers
// serving interactive requests should bound the set size.
package pcset
