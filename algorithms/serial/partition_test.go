package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/serial"
)

func TestPartition(t *testing.T) {
	parts := serial.Partition([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	require.Len(t, parts, 4)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}}, parts[0])
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}, parts[1])
	assert.Len(t, parts[2], 4)
	assert.Len(t, parts[3], 6)

	assert.Empty(t, serial.Partition([]int{0, 1, 2, 3, 4, 5, 6}))
	assert.Equal(t, [][][]int{{{0, 1}, {2, 3}}}, serial.Partition([]int{0, 1, 2, 3}))
}

func TestDerivations_Webern(t *testing.T) {
	derivations, err := webern.Derivations()
	require.NoError(t, err)
	require.Len(t, derivations, 4)

	sizes := make([]int, len(derivations))
	valid := make([]bool, len(derivations))
	for i, d := range derivations {
		sizes[i] = d.SegmentSize
		valid[i] = d.Valid
	}
	assert.Equal(t, []int{6, 4, 3, 2}, sizes)
	assert.Equal(t, []bool{true, false, true, false}, valid)

	trichords := derivations[2]
	assert.Equal(t, []int{0, 1, 4}, trichords.PrimeForm)
	assert.Equal(t, [][]int{{11, 10, 2}, {3, 7, 6}, {8, 4, 5}, {0, 1, 9}}, trichords.Segments)
	require.Len(t, trichords.Relations, 3)
	for i, rel := range trichords.Relations {
		assert.Equal(t, i+1, rel.Segment)
		assert.Equal(t, pcset.Equivalent, rel.Relation.Kind)
		assert.NotEmpty(t, rel.Relation.Transforms)
	}

	assert.Equal(t, []int{0, 1, 4, 5, 8, 9}, derivations[0].PrimeForm)
	assert.Nil(t, derivations[1].PrimeForm)
}

func TestDerivations_Chromatic(t *testing.T) {
	derivations, err := chromatic.Derivations()
	require.NoError(t, err)
	for _, d := range derivations {
		assert.True(t, d.Valid, "segment size %d", d.SegmentSize)
		for _, rel := range d.Relations {
			assert.Equal(t, pcset.Equivalent, rel.Relation.Kind)
		}
	}
}
