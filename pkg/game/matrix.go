package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Matrix is the well. Cells are indexed with row 0 at the top; the first B
// rows are a hidden buffer where pieces spawn.
type Matrix struct {
	W int // Width
	H int // Visible height
	B int // Buffer height

	M map[int]mino.Block // Locked cells
	O map[int]mino.Block // Overlay: active and ghost piece

	P *mino.Piece

	GameOver bool

	sync.Mutex
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewMatrix(w int, h int, b int) *Matrix {
	return &Matrix{W: w, H: h, B: b, M: make(map[int]mino.Block), O: make(map[int]mino.Block)}
}

func (m *Matrix) CanAddAt(p *mino.Piece, rotation int, at mino.Point) bool {
	m.Lock()
	defer m.Unlock()

	return m.canAddAt(p, rotation, at)
}

func (m *Matrix) canAddAt(p *mino.Piece, rotation int, at mino.Point) bool {
	if m.GameOver {
		return false
	}

	for _, c := range p.CellsAt(rotation, at) {
		if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H+m.B {
			return false
		}

		if m.M[I(c.X, c.Y, m.W)] != mino.BlockNone {
			return false
		}
	}

	return true
}

func (m *Matrix) add(cells mino.Mino, b mino.Block, overlay bool) error {
	M := m.M
	if overlay {
		M = m.O
	}

	for _, c := range cells {
		if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H+m.B {
			return fmt.Errorf("failed to add to matrix: point %s out of bounds", c)
		}

		index := I(c.X, c.Y, m.W)
		if !overlay && M[index] != mino.BlockNone {
			return fmt.Errorf("failed to add to matrix: point %s already contains %s", c, M[index])
		}

		M[index] = b
	}

	return nil
}

// Add writes cells into the matrix, or into the overlay when overlay is set.
func (m *Matrix) Add(cells mino.Mino, b mino.Block, overlay bool) error {
	m.Lock()
	defer m.Unlock()

	return m.add(cells, b, overlay)
}

// Block returns the block at a cell, preferring the overlay.
func (m *Matrix) Block(x int, y int) mino.Block {
	index := I(x, y, m.W)

	if b, ok := m.O[index]; ok && b != mino.BlockNone {
		return b
	}

	return m.M[index]
}

func (m *Matrix) SetBlock(x int, y int, block mino.Block, overlay bool) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H+m.B {
		return false
	}

	index := I(x, y, m.W)

	if overlay {
		m.O[index] = block
		return true
	}

	if b, ok := m.M[index]; ok && b != mino.BlockNone {
		return false
	}

	m.M[index] = block

	return true
}

func (m *Matrix) Empty(x int, y int) bool {
	return m.M[I(x, y, m.W)] == mino.BlockNone
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < m.W; x++ {
		if m.Empty(x, y) {
			return false
		}
	}

	return true
}

func (m *Matrix) ClearFilled() int {
	m.Lock()
	defer m.Unlock()

	return m.clearFilled()
}

func (m *Matrix) clearFilled() int {
	cleared := 0

	for y := 0; y < m.H+m.B; y++ {
		for m.LineFilled(y) {
			for my := y; my > 0; my-- {
				for mx := 0; mx < m.W; mx++ {
					m.M[I(mx, my, m.W)] = m.M[I(mx, my-1, m.W)]
				}
			}

			for mx := 0; mx < m.W; mx++ {
				m.M[I(mx, 0, m.W)] = mino.BlockNone
			}

			cleared++
		}
	}

	return cleared
}

// GhostY returns the lowest row the active piece can drop to at its current
// column and rotation.
func (m *Matrix) GhostY() int {
	m.Lock()
	defer m.Unlock()

	return m.ghostY()
}

func (m *Matrix) ghostY() int {
	p := m.P
	if p == nil {
		return 0
	}

	y := p.Y
	for m.canAddAt(p, p.Rotation, mino.Point{X: p.X, Y: y + 1}) {
		y++
	}

	return y
}

func (m *Matrix) ClearOverlay() {
	m.Lock()
	defer m.Unlock()

	m.clearOverlay()
}

func (m *Matrix) clearOverlay() {
	for i := range m.O {
		if m.O[i] == mino.BlockNone {
			continue
		}

		m.O[i] = mino.BlockNone
	}
}

func (m *Matrix) Clear() {
	m.Lock()
	defer m.Unlock()

	for i := range m.M {
		if m.M[i] == mino.BlockNone {
			continue
		}

		m.M[i] = mino.BlockNone
	}
}

func (m *Matrix) DrawPieces() {
	m.Lock()
	defer m.Unlock()

	m.DrawPiecesL()
}

// DrawPiecesL renders the ghost and active piece into the overlay. The
// caller must hold the matrix lock.
func (m *Matrix) DrawPiecesL() {
	m.clearOverlay()

	if m.GameOver {
		return
	}

	p := m.P
	if p == nil {
		return
	}

	_ = m.add(p.CellsAt(p.Rotation, mino.Point{X: p.X, Y: m.ghostY()}), p.Ghost(), true)
	_ = m.add(p.Cells(), p.Solid(), true)
}

// SetGameOver freezes the matrix and fades locked blocks to their ghost
// variants.
func (m *Matrix) SetGameOver() {
	m.Lock()
	defer m.Unlock()

	if m.GameOver {
		return
	}

	m.GameOver = true

	m.clearOverlay()

	for i := range m.M {
		m.M[i] = m.M[i].Ghost()
	}
}

// Render returns the visible well as text. Used by tests and debugging.
func (m *Matrix) Render() string {
	m.Lock()
	defer m.Unlock()

	var b strings.Builder

	for y := m.B; y < m.H+m.B; y++ {
		for x := 0; x < m.W; x++ {
			b.WriteRune(m.Block(x, y).Rune())
		}

		if y == m.H+m.B-1 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
