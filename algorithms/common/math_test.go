package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulo(t *testing.T) {
	cases := []struct {
		name           string
		value, modulus int
		want           int
	}{
		{"InRange", 7, 12, 7},
		{"Wraps", 14, 12, 2},
		{"NegativeWithinPeriod", -1, 12, 11},
		{"NegativeExactPeriod", -12, 12, 0},
		{"NegativeSeveralPeriods", -25, 12, 11},
		{"UnitModulus", 5, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Modulo(tc.value, tc.modulus))
		})
	}
}

func TestIntervalClass(t *testing.T) {
	assert.Equal(t, 1, IntervalClass(11, 12))
	assert.Equal(t, 6, IntervalClass(6, 12))
	assert.Equal(t, 5, IntervalClass(-5, 12))
	assert.Equal(t, 3, IntervalClass(4, 7))
	assert.Equal(t, 0, IntervalClass(12, 12))
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []int{0, 4, 7}, SortedUnique([]int{7, 12, 4, 16, -5}, 12))
}

func TestAdjacencyIntervals(t *testing.T) {
	assert.Equal(t, []int{4, 3}, AdjacencyIntervals([]int{0, 4, 7}, 12, false))
	assert.Equal(t, []int{4, 3, 5}, AdjacencyIntervals([]int{0, 4, 7}, 12, true))
	assert.Equal(t, []int{0}, AdjacencyIntervals([]int{3}, 12, true))
	assert.Empty(t, AdjacencyIntervals(nil, 12, true))
}

func TestFactors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, Factors(12))
	assert.Equal(t, []int{1, 7}, Factors(7))
	assert.Equal(t, []int{1, 3, 9}, Factors(9))
	assert.Equal(t, []int{2, 3, 4, 6}, NontrivialFactors(12))
	assert.Empty(t, NontrivialFactors(7))
	assert.Empty(t, NontrivialFactors(1))
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13}
	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d", p)
	}
	composites := []int{-3, 0, 1, 4, 6, 9, 12}
	for _, c := range composites {
		assert.False(t, IsPrime(c), "%d", c)
	}
}

func TestValidateModulus(t *testing.T) {
	require.NoError(t, ValidateModulus(12))
	err := ValidateModulus(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidModulus))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "0|4|11", Join([]int{0, 4, 11}))
	assert.Equal(t, "", Join(nil))
}
