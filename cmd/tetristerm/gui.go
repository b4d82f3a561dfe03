package main

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var (
	closedGUI bool

	app      *tview.Application
	gameGrid *tview.Grid
	mtx      *tview.TextView
	side     *tview.TextView
	status   *tview.TextView
	recent   *tview.TextView

	draw = make(chan event.DrawObject, game.CommandQueueSize)

	renderLock   = new(sync.Mutex)
	renderBuffer bytes.Buffer

	screenW, screenH       int
	newScreenW, newScreenH int
	extraScreenPadding     int
	mainHeight             int
)

const DefaultStatusText = "A/D move - S/W drop - J/K/L rotate - Space hold - P pause - Q quit"

var renderBlock = map[mino.Block][]byte{
	mino.BlockNone:         []byte(" "),
	mino.BlockGhostCyan:    []byte("[#00eeee]▓[#ffffff]"),
	mino.BlockSolidCyan:    []byte("[#00eeee]█[#ffffff]"),
	mino.BlockGhostYellow:  []byte("[#dddd00]▓[#ffffff]"),
	mino.BlockSolidYellow:  []byte("[#dddd00]█[#ffffff]"),
	mino.BlockGhostMagenta: []byte("[#c000cc]▓[#ffffff]"),
	mino.BlockSolidMagenta: []byte("[#c000cc]█[#ffffff]"),
	mino.BlockGhostGreen:   []byte("[#00e900]▓[#ffffff]"),
	mino.BlockSolidGreen:   []byte("[#00e900]█[#ffffff]"),
	mino.BlockGhostRed:     []byte("[#ee0000]▓[#ffffff]"),
	mino.BlockSolidRed:     []byte("[#ee0000]█[#ffffff]"),
	mino.BlockGhostBlue:    []byte("[#2864ff]▓[#ffffff]"),
	mino.BlockSolidBlue:    []byte("[#2864ff]█[#ffffff]"),
	mino.BlockGhostWhite:   []byte("[#eeeeee]▓[#ffffff]"),
	mino.BlockSolidWhite:   []byte("[#eeeeee]█[#ffffff]"),
}

var (
	renderHLine    = []byte(string(tcell.RuneHLine))
	renderVLine    = []byte(string(tcell.RuneVLine))
	renderULCorner = []byte(string(tcell.RuneULCorner))
	renderURCorner = []byte(string(tcell.RuneURCorner))
	renderLLCorner = []byte(string(tcell.RuneLLCorner))
	renderLRCorner = []byte(string(tcell.RuneLRCorner))
)

func initGUI() (*tview.Application, error) {
	app = tview.NewApplication()

	app.SetBeforeDrawFunc(handleResize)

	mtx = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	mtx.SetDynamicColors(true)

	side = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	side.SetDynamicColors(true)

	status = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false).
		SetText(DefaultStatusText)

	recent = tview.NewTextView().
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true)

	spacer := tview.NewBox()

	gameGrid = tview.NewGrid().
		SetBorders(false).
		SetRows(2+(20*blockSize)+extraScreenPadding, 1, -1).
		SetColumns(1, 4+(10*blockSize), 18, -1).
		AddItem(spacer, 0, 0, 2, 1, 0, 0, false).
		AddItem(mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(side, 0, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 0, 3, 1, 1, 0, 0, false).
		AddItem(status, 1, 1, 1, 3, 0, 0, false).
		AddItem(recent, 2, 1, 1, 3, 0, 0, true)

	app = app.SetInputCapture(handleKeypress)

	app.SetRoot(gameGrid, true)
	app.SetFocus(recent)

	go handleDraw()

	return app, nil
}

func handleResize(screen tcell.Screen) bool {
	newScreenW, newScreenH = screen.Size()
	if newScreenW == screenW && newScreenH == screenH {
		return false
	}

	screenW, screenH = newScreenW, newScreenH

	if !fixedBlockSize {
		if screenW >= 80 && screenH >= 44 {
			blockSize = 2
		} else {
			blockSize = 1
		}
	}

	mainHeight = (20 * blockSize) + 2
	if screenH > mainHeight+7 {
		extraScreenPadding = 2
	} else if screenH > mainHeight+4 {
		extraScreenPadding = 1
	} else {
		extraScreenPadding = 0
	}

	newLogLines := (screenH - mainHeight) - extraScreenPadding - 1
	if newLogLines > 0 {
		showLogLines = newLogLines
	} else {
		showLogLines = 1
	}

	gameGrid.SetRows(mainHeight+extraScreenPadding, 1, -1).
		SetColumns(1+extraScreenPadding, 4+(10*blockSize), 18, -1)

	draw <- event.DrawAll

	return false
}

func handleDraw() {
	var o event.DrawObject
	for o = range draw {
		switch o {
		case event.DrawPlayerMatrix:
			app.QueueUpdateDraw(drawPlayerMatrix)
		default:
			app.QueueUpdateDraw(drawAll)
		}
	}
}

func drawAll() {
	drawPlayerMatrix()
}

func drawPlayerMatrix() {
	g := activeGame
	if g == nil {
		return
	}

	renderLock.Lock()

	renderMatrix(g.Matrix)
	mtx.Clear()
	mtx.Write(renderBuffer.Bytes())

	renderSide(g)
	side.Clear()
	side.Write(renderBuffer.Bytes())

	renderLock.Unlock()
}

// renderMatrix writes the bordered well into the render buffer.
func renderMatrix(m *game.Matrix) {
	renderBuffer.Reset()

	if m == nil {
		return
	}

	m.Lock()
	defer m.Unlock()

	m.DrawPiecesL()

	bs := blockSize

	for i := 0; i < extraScreenPadding; i++ {
		renderBuffer.WriteRune('\n')
	}

	renderBuffer.Write(renderULCorner)
	for x := 0; x < m.W*bs; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderURCorner)
	renderBuffer.WriteRune('\n')

	for y := m.B; y < m.H+m.B; y++ {
		for j := 0; j < bs; j++ {
			renderBuffer.Write(renderVLine)
			for x := 0; x < m.W; x++ {
				for k := 0; k < bs; k++ {
					renderBuffer.Write(renderBlock[m.Block(x, y)])
				}
			}
			renderBuffer.Write(renderVLine)
			renderBuffer.WriteRune('\n')
		}
	}

	renderBuffer.Write(renderLLCorner)
	for x := 0; x < m.W*bs; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderLRCorner)
	renderBuffer.WriteRune('\n')

	renderPlayerName(m.W * bs)
}

func renderPlayerName(width int) {
	buf := nickname
	if len(buf) > width {
		buf = buf[:width]
	}

	pad := ((width - len(buf)) / 2) + 1
	for i := 0; i < pad; i++ {
		renderBuffer.WriteRune(' ')
	}
	renderBuffer.WriteString(buf)
}

// renderMiniPiece writes a 2x4 thumbnail of a piece kind at rotation 0.
func renderMiniPiece(k mino.Kind) {
	shape := mino.Shape(k, 0)
	block := renderBlock[k.Solid()]

	for y := 0; y < 2; y++ {
		renderBuffer.WriteRune(' ')
		for x := 0; x < 4; x++ {
			if shape.HasPoint(mino.Point{X: x, Y: y}) {
				renderBuffer.Write(block)
				renderBuffer.Write(block)
			} else {
				renderBuffer.WriteString("  ")
			}
		}
		renderBuffer.WriteRune('\n')
	}
}

// renderSide writes the hold box, next queue and score panel.
func renderSide(g *game.Game) {
	renderBuffer.Reset()

	for i := 0; i < extraScreenPadding; i++ {
		renderBuffer.WriteRune('\n')
	}

	g.Lock()

	renderBuffer.WriteString(" Hold\n")
	if g.HasHold {
		renderMiniPiece(g.HoldKind)
	} else {
		renderBuffer.WriteString("\n\n")
	}

	renderBuffer.WriteString("\n Next\n")
	for _, k := range g.Next {
		renderMiniPiece(k)
		renderBuffer.WriteRune('\n')
	}

	s := g.Score

	b2b := "off"
	if s.BackToBack {
		b2b = "ON"
	}

	combo := s.Combo
	if combo < 0 {
		combo = 0
	}

	fmt.Fprintf(&renderBuffer, " Score  %d\n", s.Points)
	fmt.Fprintf(&renderBuffer, " Lines  %d\n", s.Lines)
	fmt.Fprintf(&renderBuffer, " Level  %d\n", s.Level)
	fmt.Fprintf(&renderBuffer, " B2B    %s\n", b2b)
	fmt.Fprintf(&renderBuffer, " Combo  %d\n", combo)
	fmt.Fprintf(&renderBuffer, " Time   %s\n", g.Timer)
	fmt.Fprintf(&renderBuffer, " Faults %d\n", s.FinesseFaults)

	if s.LastClear != "" {
		fmt.Fprintf(&renderBuffer, "\n %s\n", s.LastClear)
	}

	if g.Paused {
		renderBuffer.WriteString("\n PAUSED\n")
	} else if g.GameOver {
		renderBuffer.WriteString("\n GAME OVER\n")
	}

	g.Unlock()
}

func closeGUI() {
	if closedGUI {
		return
	}
	closedGUI = true

	app.Stop()
}

func logMessage(message string) {
	logMutex.Lock()

	var prefix string
	if !wroteFirstLogMessage {
		wroteFirstLogMessage = true
	} else {
		prefix = "\n"
	}

	recent.Write([]byte(prefix + time.Now().Format(LogTimeFormat) + " " + message))

	if prefix == "" {
		// Fix for small windows not auto-scrolling
		recent.ScrollToEnd()
	}

	logMutex.Unlock()
}
