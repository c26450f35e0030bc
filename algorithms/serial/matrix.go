package serial

import (
	"slices"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
)

// Matrix is the square table of every transposition of a row. Row i is the
// prime form starting on Rows[i][0]; column j is the inversion starting on
// the j-th element of the original row. The diagonal is constant.
type Matrix struct {
	universe int
	rows     [][]int
}

// Matrix builds the transformation matrix of r. Row 0 is r itself and row i is
// r transposed by row[0]-row[i].
func (r Row) Matrix() Matrix {
	rows := make([][]int, len(r.pcs))
	for i, pc := range r.pcs {
		rows[i] = pcset.TransposePcs(r.pcs, r.pcs[0]-pc, r.universe)
	}
	return Matrix{universe: r.universe, rows: rows}
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return len(m.rows)
}

// Universe returns the modulus of the matrix entries
func (m Matrix) Universe() int {
	return m.universe
}

// Rows returns a deep copy of the matrix
func (m Matrix) Rows() [][]int {
	out := make([][]int, len(m.rows))
	for i, row := range m.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Row returns a copy of row i
func (m Matrix) Row(i int) []int {
	return slices.Clone(m.rows[i])
}

// Column returns column j read top to bottom
func (m Matrix) Column(j int) []int {
	col := make([]int, len(m.rows))
	for i, row := range m.rows {
		col[i] = row[j]
	}
	return col
}

// Labeled renders the matrix as strings bordered by its row-form labels: P on
// the left, R on the right, I along the top and RI along the bottom. Corners
// are blank. Cells use rep; labels always carry the numeric level.
func (m Matrix) Labeled(rep pcset.Representation) ([][]string, error) {
	n := len(m.rows)
	grid := make([][]string, 0, n+2)

	top := make([]string, n+2)
	bottom := make([]string, n+2)
	top[0], top[n+1], bottom[0], bottom[n+1] = " ", " ", " ", " "
	for j, pc := range m.rows[0] {
		top[j+1] = RowForm{Type: Inversion, Level: pc}.String()
		bottom[j+1] = RowForm{Type: RetrogradeInversion, Level: pc}.String()
	}
	grid = append(grid, top)

	for _, row := range m.rows {
		cells, err := pcset.FormatPitches(row, m.universe, rep)
		if err != nil {
			return nil, err
		}
		line := make([]string, 0, n+2)
		line = append(line, RowForm{Type: Prime, Level: row[0]}.String())
		line = append(line, cells...)
		line = append(line, RowForm{Type: Retrograde, Level: row[0]}.String())
		grid = append(grid, line)
	}
	return append(grid, bottom), nil
}

// Sectors splits the matrix into size x size blocks, ordered row-major. Each
// block is flattened row-major. size must divide the matrix size.
func (m Matrix) Sectors(size int) ([][]int, error) {
	n := len(m.rows)
	if size < 1 || n%size != 0 {
		return nil, common.Errorf(common.ErrLengthMismatch, "sector size %d does not divide matrix size %d", size, n)
	}

	sectors := make([][]int, 0, (n/size)*(n/size))
	for a := 0; a < n; a += size {
		for b := 0; b < n; b += size {
			block := make([]int, 0, size*size)
			for i := a; i < a+size; i++ {
				block = append(block, m.rows[i][b:b+size]...)
			}
			sectors = append(sectors, block)
		}
	}
	return sectors, nil
}
