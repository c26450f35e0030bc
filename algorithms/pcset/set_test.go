package pcset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

func TestNew(t *testing.T) {
	s, err := pcset.New(12, 7, 4, 12, 16, -5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7}, s.Pcs())
	assert.Equal(t, 12, s.Universe())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "[0,4,7]", s.String())

	_, err = pcset.New(0, 1, 2)
	assert.True(t, errors.Is(err, common.ErrInvalidModulus))
}

func TestPcsReturnsCopy(t *testing.T) {
	s := pcset.MustNew(12, 0, 4, 7)
	pcs := s.Pcs()
	pcs[0] = 11
	assert.Equal(t, []int{0, 4, 7}, s.Pcs())
}

func TestTransposeInvertComplement(t *testing.T) {
	s := pcset.MustNew(12, 0, 4, 7)
	assert.Equal(t, []int{2, 6, 9}, s.Transpose(2).Pcs())
	assert.Equal(t, []int{1, 4, 8}, s.Transpose(-11).Pcs())
	assert.Equal(t, []int{0, 3, 7}, s.Invert(7).Pcs())
	assert.Equal(t, []int{1, 2, 3, 5, 6, 8, 9, 10, 11}, s.Complement().Pcs())
	assert.True(t, s.Complement().Complement().Equal(s))
}

func TestOrderedTransforms(t *testing.T) {
	assert.Equal(t, []int{2, 1, 0}, pcset.TransposePcs([]int{11, 10, 9}, 3, 12))
	assert.Equal(t, []int{7, 3, 0}, pcset.InvertPcs([]int{0, 4, 7}, 7, 12))
}

func TestNormalOrder(t *testing.T) {
	cases := []struct {
		name string
		pcs  []int
		want []int
	}{
		{"MajorTriad", []int{0, 4, 7}, []int{0, 4, 7}},
		{"WrappedTriad", []int{11, 2, 7}, []int{7, 11, 2}},
		{"Diatonic", []int{0, 2, 4, 5, 7, 9, 11}, []int{11, 0, 2, 4, 5, 7, 9}},
		{"TieBrokenByInnerSpan", []int{3, 4, 8, 9, 10, 11}, []int{8, 9, 10, 11, 3, 4}},
		{"FullySymmetricKeepsFirst", []int{0, 4, 8}, []int{0, 4, 8}},
		{"Singleton", []int{5}, []int{5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pcset.MustNew(12, tc.pcs...).NormalOrder()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalOrderIdempotent(t *testing.T) {
	for _, pcs := range sampleSets() {
		s := pcset.MustNew(12, pcs...)
		norm, err := s.NormalOrder()
		require.NoError(t, err)
		again, err := pcset.MustNew(12, norm...).NormalOrder()
		require.NoError(t, err)
		assert.Equal(t, norm, again, "set %v", pcs)
	}
}

func TestPrimeForm(t *testing.T) {
	cases := []struct {
		name string
		pcs  []int
		want []int
	}{
		// packing to the left selects the minor-third-first inversion
		{"MajorTriad", []int{0, 4, 7}, []int{0, 3, 7}},
		{"MinorTriad", []int{2, 5, 9}, []int{0, 3, 7}},
		{"Diatonic", []int{0, 2, 4, 5, 7, 9, 11}, []int{0, 1, 3, 5, 6, 8, 10}},
		{"Hexachord", []int{0, 1, 2, 5, 6, 7}, []int{0, 1, 2, 5, 6, 7}},
		{"ComplementHexachord", []int{3, 4, 8, 9, 10, 11}, []int{0, 1, 2, 3, 7, 8}},
		{"Singleton", []int{9}, []int{0}},
		{"Dyad", []int{3, 10}, []int{0, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pcset.MustNew(12, tc.pcs...).PrimeForm()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrimeFormTranspositionInvariance(t *testing.T) {
	for _, universe := range []int{7, 12, 19} {
		for _, pcs := range sampleSets() {
			s := pcset.MustNew(universe, pcs...)
			want, err := s.PrimeForm()
			require.NoError(t, err)
			for k := 0; k < universe; k++ {
				got, err := s.Transpose(k).PrimeForm()
				require.NoError(t, err)
				assert.Equal(t, want, got, "universe %d set %v T%d", universe, pcs, k)
			}
		}
	}
}

func TestEmptySetErrors(t *testing.T) {
	empty := pcset.MustNew(12)
	assert.True(t, empty.IsEmpty())

	_, err := empty.NormalOrder()
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
	_, err = empty.PrimeForm()
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
	_, err = empty.SetClass()
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
	_, err = empty.Symmetry()
	assert.True(t, errors.Is(err, common.ErrEmptyInput))
}

func sampleSets() [][]int {
	return [][]int{
		{0, 4, 7},
		{0, 1, 4, 6},
		{0, 1, 3, 7},
		{0, 2, 4, 5, 7, 9, 11},
		{0, 4, 8},
		{1, 2, 5, 6, 9},
		{0, 3, 6, 9},
		{2, 3, 4, 8, 10},
	}
}
