package game

import "github.com/qnkhuat/tetristerm/pkg/mino"

// NewTestMatrix returns a standard well for tests.
func NewTestMatrix() *Matrix {
	return NewMatrix(10, 20, 2)
}

// AddTestBlocks fills the bottom rows with a partial stack, leaving the last
// column open.
func (m *Matrix) AddTestBlocks() {
	var block mino.Block
	bottom := m.H + m.B - 1

	for i := 0; i < 7; i++ {
		y := bottom - i
		for x := 0; x < m.W-1; x++ {
			if i > 3 && (x < 2 || x > 7) {
				continue
			}

			if i == 2 || (i > 4 && x%2 > 0) {
				block = mino.BlockSolidMagenta
			} else {
				block = mino.BlockSolidYellow
			}

			m.M[I(x, y, m.W)] = block
		}
	}
}
