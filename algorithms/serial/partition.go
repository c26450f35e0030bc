package serial

import (
	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// Partition splits values into equal contiguous segments, once for every
// nontrivial factor f of its length, giving f segments of len(values)/f. The
// result is ordered by ascending f.
func Partition(values []int) [][][]int {
	factors := common.NontrivialFactors(len(values))
	partitions := make([][][]int, 0, len(factors))
	for _, f := range factors {
		size := len(values) / f
		segments := make([][]int, 0, f)
		for b := 0; b < len(values); b += size {
			segments = append(segments, values[b:b+size:b+size])
		}
		partitions = append(partitions, segments)
	}
	return partitions
}

// SegmentRelation compares one segment of a partition against the first
type SegmentRelation struct {
	Segment  int            `json:"segment"`
	Relation pcset.Relation `json:"relation"`
}

// Derivation is the analysis of one partition of a row
type Derivation struct {
	SegmentSize int               `json:"segment_size"`
	Segments    [][]int           `json:"segments"`
	Valid       bool              `json:"valid"`
	PrimeForm   []int             `json:"prime_form,omitempty"`
	Relations   []SegmentRelation `json:"relations"`
}

// Derivations analyzes every nontrivial partition of r. A partition is a valid
// derivation when all of its segments share one prime form; PrimeForm is set
// only then. Relations compare segments 1.. against segment 0.
func (r Row) Derivations() ([]Derivation, error) {
	partitions := Partition(r.pcs)
	out := make([]Derivation, 0, len(partitions))

	for _, segments := range partitions {
		d := Derivation{
			SegmentSize: len(segments[0]),
			Segments:    make([][]int, len(segments)),
			Relations:   make([]SegmentRelation, 0, len(segments)-1),
		}

		first := r.segmentSet(segments[0])
		primes := make([][]int, len(segments))
		for i, segment := range segments {
			d.Segments[i] = append([]int(nil), segment...)

			set := r.segmentSet(segment)
			prime, err := set.PrimeForm()
			if err != nil {
				return nil, err
			}
			primes[i] = prime

			if i == 0 {
				continue
			}
			rel, err := pcset.Compare(first, set)
			if err != nil {
				return nil, err
			}
			d.Relations = append(d.Relations, SegmentRelation{Segment: i, Relation: rel})
		}

		if unique := common.UniqueSubarrays(primes, true); len(unique) == 1 {
			d.Valid = true
			d.PrimeForm = unique[0]
		}
		out = append(out, d)
	}
	return out, nil
}
