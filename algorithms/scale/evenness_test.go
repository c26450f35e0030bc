package scale_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/scale"
)

func TestMaxEvenInts(t *testing.T) {
	cases := []struct {
		cardinality, universe int
		want                  []int
	}{
		{7, 12, []int{0, 2, 4, 5, 7, 9, 10}},
		{5, 12, []int{1, 3, 6, 8, 10}},
		{6, 12, []int{0, 2, 4, 6, 8, 10}},
		{3, 7, []int{1, 3, 5}},
		{12, 12, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{0, 12, []int{}},
	}
	for _, tc := range cases {
		got, err := scale.MaxEvenInts(tc.cardinality, tc.universe)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d in %d", tc.cardinality, tc.universe)
	}

	_, err := scale.MaxEvenInts(13, 12)
	assert.True(t, errors.Is(err, common.ErrLengthMismatch))
	_, err = scale.MaxEvenInts(3, -1)
	assert.True(t, errors.Is(err, common.ErrInvalidModulus))
}

func TestMaxEvenIntervals(t *testing.T) {
	steps, err := scale.MaxEvenIntervals(7, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 2, 2, 1, 2}, steps)
}

func TestIsMaximallyEven(t *testing.T) {
	for _, tc := range []struct {
		name string
		set  pcset.Set
		want bool
	}{
		{"Diatonic", diatonic, true},
		{"Pentatonic", pentatonic, true},
		{"WholeTone", wholeTone, true},
		{"Octatonic", octatonic, true},
		{"HarmonicMinor", harmonicMin, false},
		{"Cluster", cluster, false},
		{"Aggregate", pcset.MustNew(12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), true},
		{"SevenUniverse", pcset.MustNew(7, 0, 2, 4), true},
	} {
		got, err := scale.IsMaximallyEven(tc.set)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := scale.IsMaximallyEven(emptyUniform)
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
}

func TestGenerateMaximallyEven(t *testing.T) {
	sets, err := scale.GenerateMaximallyEven(5, 12)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 2, 5, 7, 9},
		{0, 3, 5, 7, 10},
		{0, 2, 4, 7, 9},
		{0, 2, 5, 7, 10},
		{0, 3, 5, 8, 10},
	}, sets)
	assert.Contains(t, sets, []int{0, 2, 4, 7, 9})

	for _, pcs := range sets {
		s := pcset.MustNew(12, pcs...)
		me, err := scale.IsMaximallyEven(s)
		require.NoError(t, err)
		assert.True(t, me, "%v", pcs)
	}

	modes, err := scale.GenerateMaximallyEven(7, 12)
	require.NoError(t, err)
	assert.Len(t, modes, 7)

	whole, err := scale.GenerateMaximallyEven(6, 12)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 4, 6, 8, 10}}, whole)

	_, err = scale.GenerateMaximallyEven(0, 12)
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
}

func TestMyhillsProperty(t *testing.T) {
	for _, tc := range []struct {
		name string
		set  pcset.Set
		want bool
	}{
		{"Diatonic", diatonic, true},
		{"Pentatonic", pentatonic, true},
		{"WholeToneHasOneStep", wholeTone, false},
		{"HarmonicMinorNotEven", harmonicMin, false},
	} {
		got, err := scale.MyhillsProperty(tc.set)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestProportionalModuloConversion(t *testing.T) {
	got, err := scale.ProportionalModuloConversion([]int{0, 4, 7}, 12, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, got)

	got, err = scale.ProportionalModuloConversion([]int{0, 2, 4, 5, 7, 9, 11}, 12, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, got)

	// 3.5 rounds up, 1.83 rounds to 2 which wraps to 0
	got, err = scale.ProportionalModuloConversion([]int{6}, 12, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)
	got, err = scale.ProportionalModuloConversion([]int{11}, 12, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	_, err = scale.ProportionalModuloConversion([]int{1}, 12, 0)
	assert.True(t, errors.Is(err, common.ErrInvalidModulus))

	converted, err := scale.ConvertSet(diatonic, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, converted.Universe())
	assert.Equal(t, 7, converted.Len())
}
