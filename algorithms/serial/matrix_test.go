package serial_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/serial"
)

func TestMatrix_Chromatic(t *testing.T) {
	m := chromatic.Matrix()
	require.Equal(t, 12, m.Size())
	assert.Equal(t, 12, m.Universe())
	assert.Equal(t, chromatic.Pcs(), m.Row(0))
	assert.Equal(t, []int{11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, m.Row(1))
	assert.Equal(t, []int{0, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, m.Column(0))

	for i := 0; i < m.Size(); i++ {
		assert.Equal(t, 0, m.Row(i)[i], "diagonal at %d", i)
	}
}

func TestMatrix_RowsAndColumnsAreRowForms(t *testing.T) {
	for _, r := range []serial.Row{wedge, webern, unbalanced} {
		m := r.Matrix()
		first := m.Row(0)
		for i := 0; i < m.Size(); i++ {
			row := m.Row(i)
			assert.Equal(t, r.Form(serial.RowForm{Type: serial.Prime, Level: row[0]}), row)
			assert.Equal(t, r.Form(serial.RowForm{Type: serial.Inversion, Level: first[i]}), m.Column(i))
			assert.Equal(t, r.Pcs()[0], row[i])
		}
	}
}

func TestMatrix_RowsReturnsCopy(t *testing.T) {
	m := wedge.Matrix()
	rows := m.Rows()
	rows[0][0] = 7
	assert.Equal(t, 0, m.Row(0)[0])
}

func TestMatrix_Labeled(t *testing.T) {
	r := serial.MustNewRow(4, 0, 2, 1, 3)
	grid, err := r.Matrix().Labeled(pcset.Numeric)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{" ", "I0", "I2", "I1", "I3", " "},
		{"P0", "0", "2", "1", "3", "R0"},
		{"P2", "2", "0", "3", "1", "R2"},
		{"P3", "3", "1", "0", "2", "R3"},
		{"P1", "1", "3", "2", "0", "R1"},
		{" ", "RI0", "RI2", "RI1", "RI3", " "},
	}, grid)

	_, err = r.Matrix().Labeled(pcset.Named)
	assert.True(t, errors.Is(err, common.ErrUnknownPitch))

	named, err := chromatic.Matrix().Labeled(pcset.Named)
	require.NoError(t, err)
	assert.Equal(t, "C", named[1][1])
	assert.Equal(t, "P11", named[2][0])
}

func TestMatrix_Sectors(t *testing.T) {
	m := serial.MustNewRow(4, 0, 2, 1, 3).Matrix()
	sectors, err := m.Sectors(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 2, 2, 0},
		{1, 3, 3, 1},
		{3, 1, 1, 3},
		{0, 2, 2, 0},
	}, sectors)

	whole, err := m.Sectors(4)
	require.NoError(t, err)
	assert.Len(t, whole, 1)
	assert.Len(t, whole[0], 16)

	_, err = m.Sectors(3)
	assert.True(t, errors.Is(err, common.ErrLengthMismatch))
	_, err = m.Sectors(0)
	assert.True(t, errors.Is(err, common.ErrLengthMismatch))
}
