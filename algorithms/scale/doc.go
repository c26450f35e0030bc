// Package scale implements scale-theoretic tests over pitch-class sets:
// well-formedness and its generator, degeneracy, cardinality-equals-variety,
// maximal evenness (testing and generation), Myhill's property and
// proportional conversion between universes.
package scale
