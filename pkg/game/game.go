package game

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	CommandQueueSize = 10
	LogQueueSize     = 10

	SpawnX        = 3
	SpawnRotation = 0

	NextCount = 3

	LockDelay     = 500 * time.Millisecond
	MaxLockResets = 15

	BaseFallTime = 550 * time.Millisecond
	MinFallTime  = 60 * time.Millisecond
	fallFactor   = 0.87
)

// Game owns the matrix, the bag and the scoring state, and turns player
// actions and gravity ticks into piece movement.
type Game struct {
	Matrix *Matrix
	Bag    *mino.Bag
	Score  *Score
	Timer  *Stopwatch

	Next []mino.Kind

	HoldKind mino.Kind
	HasHold  bool

	Seed int64

	Paused   bool
	GameOver bool

	Event chan interface{}

	draw chan event.DrawObject
	move chan int

	holdUsed     bool
	inputs       int
	lastRotation bool

	// Lock delay state for the active piece
	pieceID   int
	landing   bool
	landed    bool
	landStart time.Time
	resets    int
	lastReset time.Time

	pauseStart time.Time

	*sync.Mutex
}

func NewGame(seed int64, startLevel int, draw chan event.DrawObject) *Game {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	g := &Game{
		Matrix: NewMatrix(10, 20, 2),
		Bag:    mino.NewBag(seed),
		Score:  NewScore(startLevel),
		Timer:  NewStopwatch(),
		Seed:   seed,
		Event:  make(chan interface{}, CommandQueueSize),
		draw:   draw,
		move:   make(chan int, CommandQueueSize),
		Mutex:  new(sync.Mutex)}

	for i := 0; i < NextCount; i++ {
		g.Next = append(g.Next, g.Bag.Take())
	}

	return g
}

// Start spawns the first piece and begins applying gravity.
func (g *Game) Start() {
	g.Lock()
	defer g.Unlock()

	if !g.takePiece() {
		g.setGameOver()
		return
	}

	go g.handleLowerPiece()

	g.Matrix.DrawPieces()
	g.notifyDraw(event.DrawAll)
}

// ProcessAction applies a player input to the active piece.
func (g *Game) ProcessAction(a event.GameAction) {
	g.Lock()
	defer g.Unlock()

	if g.GameOver {
		return
	}

	if a == event.ActionPause {
		g.togglePause()
		return
	}

	if g.Paused || g.Matrix.P == nil {
		return
	}

	switch a {
	case event.ActionMoveLeft:
		g.movePiece(-1)
	case event.ActionMoveRight:
		g.movePiece(1)
	case event.ActionSoftDrop:
		g.softDrop()
	case event.ActionHardDrop:
		g.hardDrop()
	case event.ActionRotateCW:
		g.rotatePiece(1)
	case event.ActionRotateCCW:
		g.rotatePiece(-1)
	case event.ActionRotate180:
		g.rotatePiece(2)
	case event.ActionHold:
		g.holdActive()
	}
}

func (g *Game) movePiece(dx int) bool {
	m := g.Matrix
	p := m.P

	if !m.CanAddAt(p, p.Rotation, mino.Point{X: p.X + dx, Y: p.Y}) {
		return false
	}

	m.Lock()
	p.X += dx
	m.Unlock()

	g.inputs++
	g.lastRotation = false
	g.applyReset()

	if g.grounded() {
		g.landPiece()
	}

	m.DrawPieces()
	g.notifyDraw(event.DrawPlayerMatrix)

	return true
}

func (g *Game) softDrop() {
	m := g.Matrix
	p := m.P

	if !m.CanAddAt(p, p.Rotation, mino.Point{X: p.X, Y: p.Y + 1}) {
		g.landPiece()
		return
	}

	m.Lock()
	p.Y++
	m.Unlock()

	g.Score.Points++
	g.inputs++
	g.lastRotation = false
	g.moved()

	if g.grounded() {
		g.landPiece()
	}

	m.DrawPieces()
	g.notifyDraw(event.DrawPlayerMatrix)
}

func (g *Game) hardDrop() {
	m := g.Matrix
	p := m.P

	dist := m.GhostY() - p.Y

	m.Lock()
	p.Y += dist
	m.Unlock()

	g.Score.Points += dist * 2
	g.inputs++
	g.lastRotation = false

	g.finishLanding()
}

func (g *Game) rotatePiece(d int) bool {
	m := g.Matrix
	p := m.P

	from := p.Rotation
	to := (from + d + mino.RotationStates) % mino.RotationStates

	for _, off := range mino.KickOffsets(p.Kind, from, to) {
		at := mino.Point{X: p.X + off.X, Y: p.Y + off.Y}
		if !m.CanAddAt(p, to, at) {
			continue
		}

		m.Lock()
		p.Rotation = to
		p.Point = at
		m.Unlock()

		g.inputs++
		g.lastRotation = true
		g.applyReset()

		if g.grounded() {
			g.landPiece()
		}

		m.DrawPieces()
		g.notifyDraw(event.DrawPlayerMatrix)

		return true
	}

	return false
}

// holdActive swaps the active piece with the held kind, drawing from the bag
// the first time. Allowed once per piece.
func (g *Game) holdActive() {
	if g.holdUsed {
		return
	}

	kind := g.Matrix.P.Kind

	var next mino.Kind
	if g.HasHold {
		next = g.HoldKind
	} else {
		next = g.Next[0]
		g.Next = append(g.Next[1:], g.Bag.Take())
	}

	g.HoldKind = kind
	g.HasHold = true

	if !g.spawn(next) {
		g.setGameOver()
		return
	}

	g.holdUsed = true

	g.Matrix.DrawPieces()
	g.notifyDraw(event.DrawAll)
}

func (g *Game) grounded() bool {
	p := g.Matrix.P
	return !g.Matrix.CanAddAt(p, p.Rotation, mino.Point{X: p.X, Y: p.Y + 1})
}

func (g *Game) applyReset() {
	if !g.landing || g.resets >= MaxLockResets {
		return
	}

	g.resets++
	g.lastReset = time.Now()
}

// landPiece starts the lock delay. The piece locks once it has rested for
// LockDelay with no recent movement resets.
func (g *Game) landPiece() {
	if g.landing || g.landed || g.GameOver {
		return
	}

	g.landing = true
	g.landStart = time.Now()

	id := g.pieceID

	go func() {
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()

		for range t.C {
			g.Lock()

			if g.GameOver || g.pieceID != id || !g.landing {
				g.Unlock()
				return
			}

			if g.Paused ||
				time.Since(g.landStart) < LockDelay ||
				(g.resets > 0 && time.Since(g.lastReset) < LockDelay) {
				g.Unlock()
				continue
			}

			g.finishLanding()
			g.Unlock()
			return
		}
	}()
}

// finishLanding locks the active piece, scores the result and spawns the
// next piece.
func (g *Game) finishLanding() {
	m := g.Matrix
	p := m.P
	if p == nil || g.landed || g.GameOver {
		return
	}

	// A kick may have lifted the piece off the ground during the delay.
	if m.CanAddAt(p, p.Rotation, mino.Point{X: p.X, Y: p.Y + 1}) {
		g.landing = false
		g.resets = 0
		return
	}

	g.landed = true
	g.landing = false

	tspin := g.detectTSpin()

	if err := m.Add(p.Cells(), p.Solid(), false); err != nil {
		log.Fatalf("failed to lock piece: %+v", err)
	}

	cleared := m.ClearFilled()
	awarded := g.Score.ApplyClear(cleared, tspin)
	g.Score.ApplyFinesse(g.inputs, p.X, p.Rotation)

	if awarded > 0 {
		g.Event <- &event.ScoreEvent{Event: event.Event{Message: g.Score.LastClear}, Score: awarded}
	}

	g.holdUsed = false

	if !g.takePiece() {
		g.setGameOver()
		return
	}

	m.DrawPieces()
	g.notifyDraw(event.DrawPlayerMatrix)
}

// detectTSpin applies the three corner rule after the final rotation, with
// walls and the floor counting as filled corners.
func (g *Game) detectTSpin() TSpin {
	m := g.Matrix
	p := m.P

	if p.Kind != mino.KindT || !g.lastRotation {
		return TSpinNone
	}

	cx, cy := p.X+1, p.Y+1

	filled := func(x int, y int) bool {
		if x < 0 || x >= m.W || y < 0 || y >= m.H+m.B {
			return true
		}

		return !m.Empty(x, y)
	}

	corners := []mino.Point{{X: cx - 1, Y: cy - 1}, {X: cx + 1, Y: cy - 1}, {X: cx - 1, Y: cy + 1}, {X: cx + 1, Y: cy + 1}}

	var filledCorners int
	for _, c := range corners {
		if filled(c.X, c.Y) {
			filledCorners++
		}
	}

	var front [2]mino.Point
	switch p.Rotation {
	case 0:
		front = [2]mino.Point{{X: cx - 1, Y: cy - 1}, {X: cx + 1, Y: cy - 1}}
	case 1:
		front = [2]mino.Point{{X: cx + 1, Y: cy - 1}, {X: cx + 1, Y: cy + 1}}
	case 2:
		front = [2]mino.Point{{X: cx - 1, Y: cy + 1}, {X: cx + 1, Y: cy + 1}}
	default:
		front = [2]mino.Point{{X: cx - 1, Y: cy - 1}, {X: cx - 1, Y: cy + 1}}
	}

	var filledFront int
	for _, c := range front {
		if filled(c.X, c.Y) {
			filledFront++
		}
	}

	switch {
	case filledCorners >= 4:
		return TSpinFull
	case filledCorners == 3 && filledFront < 2:
		return TSpinMini
	case filledCorners == 3:
		return TSpinFull
	default:
		return TSpinNone
	}
}

// takePiece pops the next queue and spawns it.
func (g *Game) takePiece() bool {
	kind := g.Next[0]
	g.Next = append(g.Next[1:], g.Bag.Take())

	return g.spawn(kind)
}

func (g *Game) spawn(kind mino.Kind) bool {
	m := g.Matrix

	p := mino.NewPiece(kind, mino.Point{X: SpawnX, Y: 0})
	p.Rotation = SpawnRotation

	if !m.CanAddAt(p, p.Rotation, p.Point) {
		return false
	}

	m.Lock()
	m.P = p
	m.Unlock()

	g.pieceID++
	g.inputs = 0
	g.lastRotation = false
	g.landing = false
	g.landed = false
	g.resets = 0

	return true
}

func (g *Game) setGameOver() {
	if g.GameOver {
		return
	}

	g.GameOver = true
	g.Matrix.SetGameOver()
	g.Timer.Stop()

	g.Event <- &event.GameOverEvent{}

	g.notifyDraw(event.DrawAll)
}

func (g *Game) togglePause() {
	g.Paused = !g.Paused

	if g.Paused {
		g.pauseStart = time.Now()
		g.Timer.Pause()
	} else {
		// Credit the paused time so a grounded piece keeps its
		// remaining lock delay.
		paused := time.Since(g.pauseStart)
		g.landStart = g.landStart.Add(paused)
		g.lastReset = g.lastReset.Add(paused)

		g.Timer.Resume()
	}

	g.Event <- &event.PauseEvent{Paused: g.Paused}

	g.notifyDraw(event.DrawAll)
}

// FallTime is the gravity interval at the current level.
func (g *Game) FallTime() time.Duration {
	g.Lock()
	defer g.Unlock()

	return g.fallTimeL()
}

func (g *Game) fallTimeL() time.Duration {
	d := time.Duration(float64(BaseFallTime) * math.Pow(fallFactor, float64(g.Score.Level-1)))
	if d < MinFallTime {
		d = MinFallTime
	}

	return d
}

func (g *Game) lowerPiece() {
	m := g.Matrix
	p := m.P
	if p == nil {
		return
	}

	if m.CanAddAt(p, p.Rotation, mino.Point{X: p.X, Y: p.Y + 1}) {
		m.Lock()
		p.Y++
		m.Unlock()

		m.DrawPieces()
		g.notifyDraw(event.DrawPlayerMatrix)

		if g.grounded() {
			g.landPiece()
		}

		return
	}

	g.landPiece()
}

// handleLowerPiece applies gravity. Manual drops reset the timer through the
// move channel.
func (g *Game) handleLowerPiece() {
	t := time.NewTimer(g.FallTime())

	for {
		select {
		case <-g.move:
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			t.Reset(g.FallTime())
			continue
		case <-t.C:
		}

		g.Lock()
		if g.GameOver {
			g.Unlock()
			return
		}

		if !g.Paused {
			g.lowerPiece()
		}

		d := g.fallTimeL()
		g.Unlock()

		t.Reset(d)
	}
}

func (g *Game) moved() {
	select {
	case g.move <- 0:
	default:
	}
}

func (g *Game) notifyDraw(o event.DrawObject) {
	if g.draw == nil {
		return
	}

	select {
	case g.draw <- o:
	default:
	}
}
