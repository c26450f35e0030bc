// Package serial analyzes tone rows: ordered permutations of every pitch class
// in a universe.
//
// A Row builds its transformation matrix, resolves named row forms (P, I, R and
// RI at a pitch level), partitions itself into equal segments for derivation
// analysis, and detects hexachordal combinatoriality and the all-interval
// property. Segment analysis is delegated to package pcset.
package serial
